package commands

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/datasteward/glossary-sync/catalog"
	"github.com/datasteward/glossary-sync/config"
	"github.com/datasteward/glossary-sync/glossary"
)

var GetCmd = Get{
	file:   time.Now().Format("glossary-2006-01-02T150405.tsv"),
	domain: "",
	debug:  false,
}

// Get retrieves the glossary terms for a governance domain from the catalog and
// stores them to a local TSV file.
type Get struct {
	file   string
	domain string
	debug  bool
}

func (cmd *Get) Name() string {
	return "get"
}

func (cmd *Get) Description() string {
	return "Retrieves the glossary terms for a governance domain from the catalog and stores them to a TSV file"
}

func (cmd *Get) Usage() string {
	return "--file <file> [--domain <GUID>]"
}

func (cmd *Get) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] get [options] --file <file>\n", APP)
	fmt.Println()
	fmt.Println("  Downloads the catalog's glossary terms to a TSV file. The terms are restricted to the")
	fmt.Println("  governance domain from the configuration file (or --domain) unless --domain is 'all'")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    glossary-sync get --file "glossary-terms.tsv"`)
	fmt.Println(`    glossary-sync get --domain "c17b1e85-fedd-4f37-92a2-d2b9a9456920" --file "sales-terms.tsv"`)
	fmt.Println()
}

func (cmd *Get) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("get", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file name. Defaults to 'glossary-<yyyy-mm-ddTHHmmss>.tsv'")
	flagset.StringVar(&cmd.domain, "domain", cmd.domain, "Governance domain GUID ('all' retrieves the terms for all domains)")

	return flagset
}

func (cmd *Get) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	conf := config.NewConfig()
	if err := conf.Load(options.Config); err != nil {
		return fmt.Errorf("could not load configuration (%v)", err)
	}

	domain := cmd.domain
	if domain == "" {
		domain = conf.Domain
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

	list, err := client.ListTerms(ctx)
	if err != nil {
		return err
	}

	terms := []glossary.Term{}
	for _, t := range list {
		if domain != "" && domain != "all" && t.Domain != domain {
			continue
		}

		terms = append(terms, glossary.Term{
			Name:            t.Name,
			Description:     t.Description,
			LongDescription: t.RichDescription,
			Status:          t.Status,
			Domain:          t.Domain,
		})
	}

	if len(terms) == 0 {
		return fmt.Errorf("no glossary terms in the catalog")
	}

	tmp, err := os.CreateTemp(os.TempDir(), "glossary")
	if err != nil {
		return err
	}

	defer func() {
		tmp.Close()
		os.Remove(tmp.Name())
	}()

	if err := glossary.WriteTSV(tmp, terms); err != nil {
		return fmt.Errorf("error creating TSV file (%v)", err)
	}

	tmp.Close()

	dir := filepath.Dir(cmd.file)
	if err := os.MkdirAll(dir, 0770); err != nil {
		return err
	}

	if err := os.Rename(tmp.Name(), cmd.file); err != nil {
		return err
	}

	infof("Retrieved %v glossary terms to file %s", len(terms), cmd.file)

	return nil
}
