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

package cmd

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/forensicanalysis/timesketch"
)

// Sketch is the timesketch sketch commandline subcommand
func Sketch() *cobra.Command {
	sketchCommand := &cobra.Command{
		Use:   "sketch",
		Short: "Manage sketches on the server",
	}
	sketchCommand.AddCommand(sketchCreateCommand(), sketchGetCommand(), sketchListCommand())
	return sketchCommand
}

func sketchCreateCommand() *cobra.Command {
	var description string
	command := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new sketch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			sketch, err := client.CreateSketch(cmd.Context(), cmd.Flags().Args()[0], description)
			if err != nil {
				return err
			}
			b, _ := json.Marshal(sketch)
			fmt.Printf("%s\n", b)
			return nil
		},
	}
	command.Flags().StringVar(&description, "description", "", "description of the sketch")
	return command
}

func sketchGetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Retrieve a single sketch",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sketchID, err := strconv.Atoi(cmd.Flags().Args()[0])
			if err != nil {
				return err
			}
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			sketch, err := client.GetSketch(cmd.Context(), sketchID)
			if err != nil {
				return err
			}
			b, _ := json.Marshal(sketch)
			fmt.Printf("%s\n", b)
			return nil
		},
	}
}

func sketchListCommand() *cobra.Command {
	opts := timesketch.ListSketchesOptions{}
	command := &cobra.Command{
		Use:   "list",
		Short: "List all sketches, one JSON document per line",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := newClient(cmd)
			if err != nil {
				return err
			}
			it := client.ListSketches(opts)
			for it.Next(cmd.Context()) {
				sketch := it.Sketch()
				b, _ := json.Marshal(&sketch)
				fmt.Printf("%s\n", b)
			}
			return it.Err()
		},
	}
	command.Flags().IntVar(&opts.PerPage, "per-page", 0, "sketches per page")
	command.Flags().StringVar(&opts.Scope, "scope", "", "listing scope, e.g. user or shared")
	command.Flags().BoolVar(&opts.IncludeArchived, "include-archived", false, "include archived sketches")
	return command
}
