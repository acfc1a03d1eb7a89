package commands

import (
	"context"
	"flag"
	"fmt"

	"github.com/google/uuid"

	"github.com/datasteward/glossary-sync/catalog"
	"github.com/datasteward/glossary-sync/config"
)

var DeleteCmd = Delete{
	termID: "",
	all:    false,
	debug:  false,
}

// Delete deletes a glossary term by ID, or all the glossary terms in the configured
// governance domain.
type Delete struct {
	termID string
	all    bool
	debug  bool
}

func (cmd *Delete) Name() string {
	return "delete"
}

func (cmd *Delete) Description() string {
	return "Deletes a glossary term by ID (or all the terms in the configured governance domain)"
}

func (cmd *Delete) Usage() string {
	return "--term-id <GUID> | --all"
}

func (cmd *Delete) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] delete [options]\n", APP)
	fmt.Println()
	fmt.Println("  Deletes the glossary term with the given ID. With --all, deletes every glossary term in")
	fmt.Println("  the governance domain from the configuration file - terms that cannot be deleted are")
	fmt.Println("  logged and the remaining terms are still attempted")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    glossary-sync delete --term-id "59e24e45-7d8f-47ec-ab46-b15ca6e5e400"`)
	fmt.Println(`    glossary-sync delete --all`)
	fmt.Println()
}

func (cmd *Delete) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("delete", flag.ExitOnError)

	flagset.StringVar(&cmd.termID, "term-id", cmd.termID, "ID (GUID) of the glossary term to delete")
	flagset.BoolVar(&cmd.all, "all", cmd.all, "Deletes all the glossary terms in the configured governance domain")

	return flagset
}

func (cmd *Delete) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	// ... check parameters
	if cmd.termID == "" && !cmd.all {
		return fmt.Errorf("--term-id or --all is a required option")
	}

	if cmd.termID != "" && cmd.all {
		return fmt.Errorf("--term-id and --all are mutually exclusive")
	}

	if cmd.termID != "" {
		if _, err := uuid.Parse(cmd.termID); err != nil {
			return fmt.Errorf("invalid term ID '%s'", cmd.termID)
		}
	}

	conf := config.NewConfig()
	if err := conf.Load(options.Config); err != nil {
		return fmt.Errorf("could not load configuration (%v)", err)
	}

	ctx := context.Background()

	token, err := catalog.AcquireToken(ctx, catalog.Credentials{
		TenantID:     conf.TenantID,
		ClientID:     conf.ClientID,
		ClientSecret: conf.ClientSecret,
		Resource:     conf.Resource,
	})
	if err != nil {
		return err
	}

	endpoint := conf.Endpoint
	if endpoint == "" {
		endpoint = catalog.Endpoint(conf.Account)
	}

	client := catalog.NewClient(endpoint, token)

	if cmd.termID != "" {
		if err := client.DeleteTerm(ctx, cmd.termID); err != nil {
			return err
		}

		infof("Deleted glossary term %v", cmd.termID)

		return nil
	}

	// ... --all, scoped to the configured domain
	if conf.Domain == "" {
		return fmt.Errorf("no governance domain in the configuration file - refusing to delete all terms")
	}

	list, err := client.ListTerms(ctx)
	if err != nil {
		return err
	}

	deleted := 0
	failed := 0

	for _, term := range list {
		if term.Domain != conf.Domain {
			continue
		}

		if err := client.DeleteTerm(ctx, term.ID); err != nil {
			warnf("%-24s could not be deleted (%v)", term.Name, err)
			failed++
			continue
		}

		infof("%-24s deleted", term.Name)
		deleted++
	}

	infof("deleted:%v  failed:%v", deleted, failed)

	if deleted == 0 && failed > 0 {
		return fmt.Errorf("no glossary terms could be deleted")
	}

	return nil
}
