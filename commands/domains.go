package commands

import (
	"context"
	"flag"
	"fmt"
	"sort"

	"github.com/datasteward/glossary-sync/catalog"
	"github.com/datasteward/glossary-sync/config"
)

var DomainsCmd = Domains{}

// Domains lists the governance domains defined in the catalog.
type Domains struct {
	debug bool
}

func (cmd *Domains) Name() string {
	return "domains"
}

func (cmd *Domains) Description() string {
	return "Lists the governance domains defined in the catalog"
}

func (cmd *Domains) Usage() string {
	return ""
}

func (cmd *Domains) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] domains\n", APP)
	fmt.Println()
	fmt.Println("  Lists the name and GUID of the governance domains defined in the catalog")
	fmt.Println()
}

func (cmd *Domains) FlagSet() *flag.FlagSet {
	return flag.NewFlagSet("domains", flag.ExitOnError)
}

func (cmd *Domains) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

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

	domains, err := client.ListDomains(ctx)
	if err != nil {
		return err
	}

	names := []string{}
	for name := range domains {
		names = append(names, name)
	}

	sort.Strings(names)

	for _, name := range names {
		fmt.Printf("%-36s  %s\n", domains[name], name)
	}

	return nil
}
