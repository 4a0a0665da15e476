// Copyright (c) 2020 Siemens AG
//
// Permission is hereby granted, free of charge, to any person obtaining a copy of
// this software and associated documentation files (the "Software"), to deal in
// the Software without restriction, including without limitation the rights to
// use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
// the Software, and to permit persons to whom the Software is furnished to do so,
// subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
// FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
// COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
// IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
// CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
//
// Author(s): Jonas Plum

// Package timesketch implements the timesketch command line tool with
// various subcommands to work with a remote Timesketch server.
//     sketch    Manage sketches (create, get, list)
//     user      Manage user accounts (create, list)
//     index     Manage search indices (create, get, list)
//     sigma     Manage Sigma rules (list, get, import, parse, lint)
//     tasks     Check the status of background jobs
//     version   Print the client and server version
//
// The server address and username are read from ~/.timesketchrc or the
// --host and --username flags, the password from the TIMESKETCH_PASSWORD
// environment variable.
//
// Usage
//
// Create a sketch
//     timesketch sketch create "Case 42" --description "Intrusion on hr laptop"
// List all sketches
//     timesketch sketch list
// Upload Sigma rules
//     timesketch sigma import 'rules/*.yml'
// Check background jobs
//     timesketch tasks
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/forensicanalysis/timesketch/cmd"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "timesketch",
		Short: "Work with a remote Timesketch server",
	}
	rootCmd.PersistentFlags().String("host", "", "server address, e.g. https://timesketch.example.com")
	rootCmd.PersistentFlags().String("username", "", "username for the server")
	rootCmd.PersistentFlags().String("config", "", "path to the rc file (default ~/.timesketchrc)")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.AddCommand(cmd.Sketch(), cmd.User(), cmd.Index(), cmd.Sigma(),
		cmd.Tasks(), cmd.Version())
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("Error:", err)
		os.Exit(1)
	}
}
