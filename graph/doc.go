// Package graph provides the version-alias usage graph of a version catalog.
//
// Libraries in a catalog often share a version through a [versions] alias.
// The graph links every version alias to the libraries referring to it, and
// supports questions a catalog maintainer asks before editing it:
//
//   - Which libraries move when this version changes?
//   - Which versions are declared but never used?
//   - Which references point at an alias that does not exist?
//   - Which constraints can never be satisfied?
//
// # Building a Graph
//
//	model, _ := versioncatalog.ParseFile("gradle/libs.versions.toml")
//	g := graph.Build(model)
//
// # Querying the Graph
//
//	node := g.Node("micronaut")   // version alias and its users
//	shared := g.Shared()          // aliases used by more than one library
//	orphans := g.Orphans()        // declared, never referenced
//	dangling := g.Dangling()      // referenced, never declared
//	issues := g.Check()           // all of the above, plus unsatisfiable constraints
//
// # Output Formats
//
//	jsonBytes, _ := g.ToJSON()
//	dotString := g.ToDOT()
//	textString := g.ToText()
package graph
