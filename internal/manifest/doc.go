// Package manifest loads HCL dependency manifests and builds the dependency
// graph they describe.
//
// A manifest is any number of .hcl files holding three kinds of blocks:
//
//	artifact_type "fixture-jar" {
//	  extension  = "jar"
//	  classifier = "fixtures"
//	  properties = { language = "java" }
//	}
//
//	project "app" {
//	  dependencies = ["core"]
//	}
//
//	dependency "core" {
//	  coords     = "org.example:core:${var.version}"
//	  scope      = "compile"
//	  depends_on = ["util"]
//	}
//
// Exactly one project block must exist across all files. A dependency names
// its artifact either with coords (group:artifact[:extension[:classifier]]:version)
// or with the separate group, artifact, version, classifier, extension and
// type attributes, never both. Variables passed to the Loader are available
// as var.<name>.
//
// Build turns every dependency block into one graph node and links nodes by
// depends_on, so a dependency referenced from several places is the same
// node and cyclic references produce a cyclic graph.
package manifest
