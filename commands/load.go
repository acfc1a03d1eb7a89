package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"

	"github.com/datasteward/glossary-sync/catalog"
	"github.com/datasteward/glossary-sync/config"
	"github.com/datasteward/glossary-sync/glossary"
)

var LoadCmd = Load{
	workdir:     "",
	credentials: "",
	file:        "",
	url:         "",
	area:        "",

	dryrun: false,
	strict: false,
	force:  false,
	debug:  false,
}

var errUnchanged = errors.New("spreadsheet unchanged")

// Load reads glossary terms from a spreadsheet and creates them in the catalog
// glossary. Terms that already exist in their governance domain are skipped.
type Load struct {
	workdir     string
	credentials string
	file        string
	url         string
	area        string

	dryrun bool
	strict bool
	force  bool
	debug  bool

	spreadsheetID string
	revision      string
}

// The per-term catalog operations used by the load loop.
type glossaryAPI interface {
	ListTerms(ctx context.Context) ([]catalog.Term, error)
	ListDomains(ctx context.Context) (map[string]string, error)
	CreateTerm(ctx context.Context, term catalog.Term) (string, error)
}

func (cmd *Load) Name() string {
	return "load"
}

func (cmd *Load) Description() string {
	return "Reads glossary terms from a spreadsheet and creates them in the catalog glossary"
}

func (cmd *Load) Usage() string {
	return "--file <file> | --url <url> --range <range>"
}

func (cmd *Load) Help() {
	fmt.Println()
	fmt.Printf("  Usage: %s [--debug] [--config <file>] load [options]\n", APP)
	fmt.Println()
	fmt.Println("  Reads glossary terms from a TSV file or a Google Sheets worksheet and creates them in the")
	fmt.Println("  catalog glossary. Terms that already exist in their governance domain are skipped. By")
	fmt.Println("  default a term that cannot be created is logged and the remaining terms are still attempted")
	fmt.Println("  - use --strict to abort on the first failure instead")
	fmt.Println()

	helpOptions(cmd.FlagSet())

	fmt.Println()
	fmt.Println("  Examples:")
	fmt.Println(`    glossary-sync load --file "glossary-terms.tsv"`)
	fmt.Println(`    glossary-sync load --credentials "credentials.json" \`)
	fmt.Println(`                       --url "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms" \`)
	fmt.Println(`                       --range "Terms!A1:E"`)
	fmt.Println()
}

func (cmd *Load) FlagSet() *flag.FlagSet {
	flagset := flag.NewFlagSet("load", flag.ExitOnError)

	flagset.StringVar(&cmd.file, "file", cmd.file, "TSV file with the glossary terms. Takes precedence over --url")
	flagset.StringVar(&cmd.url, "url", cmd.url, "Spreadsheet URL")
	flagset.StringVar(&cmd.area, "range", cmd.area, "Spreadsheet range e.g. 'Terms!A1:E'")
	flagset.StringVar(&cmd.credentials, "credentials", cmd.credentials, "Path for the Google API 'credentials.json' file")
	flagset.StringVar(&cmd.workdir, "workdir", cmd.workdir, "Directory for working files (tokens, revisions, etc)")
	flagset.BoolVar(&cmd.dryrun, "dryrun", cmd.dryrun, "Simulates a load without creating any terms in the catalog")
	flagset.BoolVar(&cmd.strict, "strict", cmd.strict, "Fails on the first term that cannot be created")
	flagset.BoolVar(&cmd.force, "force", cmd.force, "Skips the spreadsheet revision check and the duplicate term check")

	return flagset
}

func (cmd *Load) Execute(args ...any) error {
	options := args[0].(*Options)

	cmd.debug = options.Debug

	conf := config.NewConfig()
	if err := conf.Load(options.Config); err != nil {
		return fmt.Errorf("could not load configuration (%v)", err)
	}

	cmd.defaults(conf)

	if strings.TrimSpace(cmd.file) == "" && strings.TrimSpace(cmd.url) == "" {
		return fmt.Errorf("--file or --url is a required option")
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

	terms, err := cmd.readTerms(ctx)
	if err != nil {
		if errors.Is(err, errUnchanged) {
			infof("Spreadsheet unchanged - nothing to do")
			return nil
		}

		return err
	}

	if len(terms) == 0 {
		return fmt.Errorf("no glossary terms in spreadsheet")
	}

	infof("Read %v glossary terms", len(terms))

	endpoint := conf.Endpoint
	if endpoint == "" {
		endpoint = catalog.Endpoint(conf.Account)
	}

	client := catalog.NewClient(endpoint, token)

	created, skipped, failed, err := cmd.upload(ctx, client, terms, conf.Domain)

	infof("created:%v  skipped:%v  failed:%v", created, skipped, failed)

	if err != nil {
		return err
	}

	if failed > 0 && created == 0 && skipped == 0 {
		return fmt.Errorf("no glossary terms could be created")
	}

	if cmd.spreadsheetID != "" && cmd.revision != "" && failed == 0 && !cmd.dryrun {
		if err := storeRevision(cmd.workdir, cmd.spreadsheetID, cmd.revision); err != nil {
			warnf("could not record spreadsheet revision (%v)", err)
		}
	}

	return nil
}

// Command line flags take precedence over the configuration file which takes
// precedence over the built-in defaults.
func (cmd *Load) defaults(conf *config.Config) {
	if cmd.file == "" {
		cmd.file = conf.Spreadsheet.File
	}

	if cmd.url == "" {
		cmd.url = conf.Spreadsheet.URL
		if cmd.area == "" {
			cmd.area = conf.Spreadsheet.Range
		}
	}

	if cmd.credentials == "" {
		cmd.credentials = conf.Credentials
	}

	if cmd.credentials == "" {
		cmd.credentials = DEFAULT_CREDENTIALS
	}

	if cmd.workdir == "" {
		cmd.workdir = conf.Workdir
	}

	if cmd.workdir == "" {
		cmd.workdir = DEFAULT_WORKDIR
	}
}

func (cmd *Load) readTerms(ctx context.Context) ([]glossary.Term, error) {
	if strings.TrimSpace(cmd.file) != "" {
		return glossary.ReadFile(cmd.file)
	}

	return cmd.readWorksheet(ctx)
}

func (cmd *Load) readWorksheet(ctx context.Context) ([]glossary.Term, error) {
	spreadsheetID, err := getSpreadsheetID(cmd.url)
	if err != nil {
		return nil, err
	}

	if strings.TrimSpace(cmd.area) == "" {
		return nil, fmt.Errorf("--range is a required option")
	}

	if cmd.debug {
		debugf("Spreadsheet - ID:%s  range:%s", spreadsheetID, cmd.area)
	}

	cmd.spreadsheetID = spreadsheetID

	workdir := filepath.Join(cmd.workdir, ".google")

	if !cmd.force {
		if err := cmd.checkRevision(ctx, spreadsheetID, workdir); err != nil {
			return nil, err
		}
	}

	client, err := authorize(cmd.credentials, SHEETS, workdir)
	if err != nil {
		return nil, fmt.Errorf("authentication/authorization error (%v)", err)
	}

	google, err := sheets.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return nil, fmt.Errorf("unable to create new Sheets client (%v)", err)
	}

	response, err := google.Spreadsheets.Values.Get(spreadsheetID, cmd.area).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve data from sheet (%v)", err)
	}

	if len(response.Values) == 0 {
		return nil, fmt.Errorf("no data in spreadsheet/range")
	}

	return glossary.MakeTable(response)
}

// Compares the spreadsheet's latest revision against the revision recorded on the
// last synchronization. A failed revision check logs a warning and the load carries
// on - only a positively unchanged spreadsheet short-circuits the run.
func (cmd *Load) checkRevision(ctx context.Context, spreadsheetID, workdir string) error {
	client, err := authorize(cmd.credentials, DRIVE, workdir)
	if err != nil {
		warnf("unable to check spreadsheet revision (%v)", err)
		return nil
	}

	gdrive, err := drive.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		warnf("unable to check spreadsheet revision (%v)", err)
		return nil
	}

	latest, err := getVersion(gdrive, spreadsheetID, ctx)
	if err != nil {
		warnf("unable to check spreadsheet revision (%v)", err)
		return nil
	}

	cmd.revision = latest.revision

	if recorded := cachedRevision(cmd.workdir, spreadsheetID); recorded != "" && recorded == latest.revision {
		return errUnchanged
	}

	return nil
}

func (cmd *Load) upload(ctx context.Context, api glossaryAPI, terms []glossary.Term, defaultDomain string) (int, int, int, error) {
	existing := map[string]bool{}

	if !cmd.force {
		list, err := api.ListTerms(ctx)
		if err != nil {
			return 0, 0, 0, err
		}

		for _, t := range list {
			existing[t.Name+"\t"+t.Domain] = true
		}
	}

	domains, err := api.ListDomains(ctx)
	if err != nil {
		return 0, 0, 0, err
	}

	created := 0
	skipped := 0
	failed := 0

	for _, term := range terms {
		guid, err := resolveDomain(term.Domain, defaultDomain, domains)
		if err != nil {
			failed++
			if cmd.strict {
				return created, skipped, failed, fmt.Errorf("term '%s' (%v)", term.Name, err)
			}

			warnf("%-24s %v", term.Name, err)
			continue
		}

		if existing[term.Name+"\t"+guid] {
			infof("%-24s already exists in the governance domain - skipped", term.Name)
			skipped++
			continue
		}

		if cmd.dryrun {
			infof("%-24s would be created (dry run)", term.Name)
			created++
			continue
		}

		id, err := api.CreateTerm(ctx, catalog.Term{
			Name:            term.Name,
			Description:     term.Description,
			RichDescription: term.LongDescription,
			Status:          term.Status,
			Domain:          guid,
		})
		if err != nil {
			failed++
			if cmd.strict {
				return created, skipped, failed, fmt.Errorf("could not create term '%s' (%v)", term.Name, err)
			}

			warnf("%-24s %v", term.Name, err)
			continue
		}

		infof("%-24s created (%v)", term.Name, id)
		created++
	}

	return created, skipped, failed, nil
}

// A term's governance domain may be a GUID or a domain name - names are resolved
// against the catalog's domain list. A term that resolves to neither is not
// addressable.
func resolveDomain(domain, fallback string, domains map[string]string) (string, error) {
	v := strings.TrimSpace(domain)
	if v == "" {
		v = strings.TrimSpace(fallback)
	}

	if v == "" {
		return "", fmt.Errorf("no governance domain")
	}

	if _, err := uuid.Parse(v); err == nil {
		return v, nil
	}

	if guid, ok := domains[v]; ok {
		return guid, nil
	}

	return "", fmt.Errorf("unknown governance domain '%s'", v)
}
