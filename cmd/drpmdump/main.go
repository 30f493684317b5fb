/*******************************************************************************
*
* Copyright 2015 Stefan Majewsky <majewsky@gmx.net>
*
* This file is part of Holo.
*
* Holo is free software: you can redistribute it and/or modify it under the
* terms of the GNU General Public License as published by the Free Software
* Foundation, either version 3 of the License, or (at your option) any later
* version.
*
* Holo is distributed in the hope that it will be useful, but WITHOUT ANY
* WARRANTY; without even the implied warranty of MERCHANTABILITY or FITNESS FOR
* A PARTICULAR PURPOSE. See the GNU General Public License for more details.
*
* You should have received a copy of the GNU General Public License along with
* Holo. If not, see <http://www.gnu.org/licenses/>.
*
*******************************************************************************/

// Command drpmdump reads a single DeltaRPM archive and prints its parsed
// structure, either as an indented human-readable dump or as JSON.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	flag "github.com/ogier/pflag"

	"github.com/holocm/go-drpm/drpm"
)

func main() {
	asJSON := flag.Bool("json", false, "print the parsed record as JSON instead of a text dump")
	showVersion := flag.Bool("version", false, "print the program version and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println("drpmdump (go-drpm)")
		return
	}

	args := flag.Args()
	if len(args) != 1 {
		printHelp()
		os.Exit(1)
	}

	var ec ErrorCollector

	rec, err := drpm.Read(args[0])
	ec.Add(err)
	if err != nil {
		for _, e := range ec.Errors {
			showError(e)
		}
		os.Exit(2)
	}

	info, err := rec.ToInfo()
	if err != nil {
		showError(err)
		os.Exit(2)
	}

	if *asJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(info); err != nil {
			showError(err)
			os.Exit(2)
		}
		return
	}

	fmt.Print(renderText(info))
}

func printHelp() {
	fmt.Printf("Usage: %s [options] <drpm-file>\n\nOptions:\n", os.Args[0])
	fmt.Println("  --json\t\tPrint the parsed record as JSON")
	fmt.Println("  --version\t\tPrint the program version and exit")
}

func showError(err error) {
	fmt.Fprintf(os.Stderr, "\x1b[31m\x1b[1m!!\x1b[0m %s\n", err.Error())
}
