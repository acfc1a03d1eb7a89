package commands

import (
	"flag"
	"fmt"
	"log"
)

const APP = "glossary-sync"
const VERSION = "v0.2.0"

// Options are the application-level options, set by the global command line flags.
type Options struct {
	Config string
	Debug  bool
}

// Command is the interface implemented by the CLI subcommands for the main()
// command list.
type Command interface {
	Name() string
	Description() string
	Usage() string
	Help()
	FlagSet() *flag.FlagSet
	Execute(args ...any) error
}

func helpOptions(flagset *flag.FlagSet) {
	fmt.Println("  Options:")

	flagset.VisitAll(func(f *flag.Flag) {
		fmt.Printf("    --%-13s %s\n", f.Name, f.Usage)
	})
}

func debugf(format string, args ...any) {
	log.Printf("%-5s %s", "DEBUG", fmt.Sprintf(format, args...))
}

func infof(format string, args ...any) {
	log.Printf("%-5s %s", "INFO", fmt.Sprintf(format, args...))
}

func warnf(format string, args ...any) {
	log.Printf("%-5s %s", "WARN", fmt.Sprintf(format, args...))
}
