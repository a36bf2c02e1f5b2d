// Generates the ent client for the document and job schemas into
// gen/ent, which is not committed. Run from the repository root.
package main

import (
	"log"

	"entgo.io/ent/entc"
	"entgo.io/ent/entc/gen"
)

func main() {
	err := entc.Generate(
		"./db/ent/schema",
		&gen.Config{
			Target:  "gen/ent",
			Package: "github.com/accessly/docpipeline/gen/ent",
			Schema:  "github.com/accessly/docpipeline/db/ent/schema",
		},
	)
	if err != nil {
		log.Fatal(err)
	}
}
