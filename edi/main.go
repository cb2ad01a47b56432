package main

import (
	"os"

	"github.com/araguma/elderplan-edi/edi/edicli"
	"github.com/araguma/elderplan-edi/log"
)

func main() {
	if err := edicli.GetApp().Run(os.Args); err != nil {
		log.CLI.Fatal(err)
	}
}
