package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/datasteward/glossary-sync/commands"
)

var cli = []commands.Command{
	&commands.VersionCmd,
	&commands.LoadCmd,
	&commands.GetCmd,
	&commands.DeleteCmd,
	&commands.DomainsCmd,
}

var options = commands.Options{
	Config: commands.DEFAULT_CONFIG,
	Debug:  false,
}

func main() {
	flag.Usage = usage
	flag.StringVar(&options.Config, "config", options.Config, "Configuration file path")
	flag.BoolVar(&options.Debug, "debug", options.Debug, "Enable debugging information")
	flag.Parse()

	args := flag.Args()

	if len(args) == 0 {
		usage()
		os.Exit(1)
	}

	if args[0] == "help" {
		help(args[1:])
		os.Exit(0)
	}

	cmd := find(args[0])
	if cmd == nil {
		fmt.Printf("\nInvalid command '%s'\n", args[0])
		usage()
		os.Exit(1)
	}

	if err := cmd.FlagSet().Parse(args[1:]); err != nil {
		fmt.Printf("\nError parsing command line: %v\n\n", err)
		os.Exit(1)
	}

	if err := cmd.Execute(&options); err != nil {
		log.Fatalf("ERROR: %v", err)
	}
}

func find(name string) commands.Command {
	for _, cmd := range cli {
		if cmd.Name() == name {
			return cmd
		}
	}

	return nil
}

func help(args []string) {
	if len(args) > 0 {
		if cmd := find(args[0]); cmd != nil {
			cmd.Help()
			return
		}

		fmt.Printf("\nInvalid command '%s'\n", args[0])
	}

	usage()
}

func usage() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] <command> [options]\n", commands.APP)
	fmt.Println()
	fmt.Println("  Commands:")

	for _, cmd := range cli {
		fmt.Printf("    %-9s %s\n", cmd.Name(), cmd.Description())
	}

	fmt.Println()
	fmt.Printf("  Use '%s help <command>' for command specific information\n", commands.APP)
	fmt.Println()
}
