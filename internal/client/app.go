// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"text/tabwriter"

	"github.com/MKhiriev/go-config-engine/internal/adapter"
	"github.com/MKhiriev/go-config-engine/internal/logger"
	"github.com/MKhiriev/go-config-engine/internal/validators"
	"github.com/MKhiriev/go-config-engine/models"
)

// Usage lists the configctl subcommands.
const Usage = `usage: configctl [global flags] <command> [arguments]

commands:
  validate-file <schema.yaml>           check a schema file offline
  push [-validate] [-activate] <file>   upload a schema file as a draft
  schemas [-state STATE]                list schemas
  validate <schema-id>                  validate a draft
  activate <schema-id>                  activate a validated schema
  create-org <name>                     create an organization
  org <ref>                             show an organization
  set-overrides <ref> <file>            replace an organization's overrides
  effective <ref>                       show an effective configuration
  preview <ref> <file>                  preview a user layer on top of the overrides
  token -role ROLE [-env ENV] [-subject SUBJECT]
                                        issue a caller token
  health                                check the server
`

// App dispatches configctl subcommands.
type App struct {
	api    adapter.ConfigAPI
	tokens TokenIssuer
	out    io.Writer
	logger *logger.Logger
}

// NewApp creates the application. api may be nil when no server address
// is configured; tokens may be nil when no sign key is configured. Only
// the subcommands needing them fail.
func NewApp(api adapter.ConfigAPI, tokens TokenIssuer, out io.Writer, logger *logger.Logger) *App {
	return &App{
		api:    api,
		tokens: tokens,
		out:    out,
		logger: logger,
	}
}

// command runs one subcommand with the arguments after its name.
type command func(ctx context.Context, args []string) error

func (a *App) commands() map[string]command {
	return map[string]command{
		"validate-file": a.validateFile,
		"push":          a.remote(a.push),
		"schemas":       a.remote(a.listSchemas),
		"validate":      a.remote(a.validateSchema),
		"activate":      a.remote(a.activateSchema),
		"create-org":    a.remote(a.createOrganization),
		"org":           a.remote(a.getOrganization),
		"set-overrides": a.remote(a.setOverrides),
		"effective":     a.remote(a.effectiveConfig),
		"preview":       a.remote(a.preview),
		"token":         a.issueToken,
		"health":        a.remote(a.health),
	}
}

// Run dispatches args[0] to its command and passes it the remaining
// arguments. A missing or unknown command returns an error wrapping
// [ErrUsage].
func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: no command given", ErrUsage)
	}

	cmd, ok := a.commands()[args[0]]
	if !ok {
		return fmt.Errorf("%w: unknown command %q", ErrUsage, args[0])
	}

	a.logger.Debug().Str("command", args[0]).Strs("args", args[1:]).Msg("running command")
	return cmd(ctx, args[1:])
}

// remote guards a command that needs a server address.
func (a *App) remote(cmd command) command {
	return func(ctx context.Context, args []string) error {
		if a.api == nil {
			return ErrNoServer
		}
		return cmd(ctx, args)
	}
}

// validateFile checks a local schema file without contacting the server.
func (a *App) validateFile(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: validate-file <schema.yaml>", ErrUsage)
	}

	doc, err := readSchemaFile(args[0])
	if err != nil {
		return err
	}

	schema, err := validators.ValidateSchema(doc)
	if err != nil {
		a.printViolations(err)
		return err
	}

	fields := 0
	for _, ns := range schema.Namespaces {
		fields += len(ns.Fields)
	}
	fmt.Fprintf(a.out, "schema %s is valid: %d namespaces, %d fields\n", schema.Version, len(schema.Namespaces), fields)
	return nil
}

// push uploads a schema file as a draft. -validate and -activate walk it
// further through the lifecycle and stop at the first failing step.
func (a *App) push(ctx context.Context, args []string) error {
	fs := newFlagSet("push")
	validate := fs.Bool("validate", false, "validate the draft after upload")
	activate := fs.Bool("activate", false, "validate and activate the draft after upload")
	if err := fs.Parse(args); err != nil || fs.NArg() != 1 {
		return fmt.Errorf("%w: push [-validate] [-activate] <file>", ErrUsage)
	}

	doc, err := readSchemaFile(fs.Arg(0))
	if err != nil {
		return err
	}

	record, err := a.api.CreateSchema(ctx, doc)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created draft %d (version %s)\n", record.ID, record.Version)

	if !*validate && !*activate {
		return nil
	}
	if _, err = a.api.ValidateSchema(ctx, record.ID); err != nil {
		a.printViolations(err)
		return err
	}
	fmt.Fprintf(a.out, "validated schema %d\n", record.ID)

	if !*activate {
		return nil
	}
	activation, err := a.api.ActivateSchema(ctx, record.ID)
	if err != nil {
		return err
	}
	a.printActivation(activation)
	return nil
}

func (a *App) listSchemas(ctx context.Context, args []string) error {
	fs := newFlagSet("schemas")
	state := fs.String("state", "", "only list schemas in this state")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 {
		return fmt.Errorf("%w: schemas [-state STATE]", ErrUsage)
	}

	records, err := a.api.ListSchemas(ctx, models.SchemaState(*state))
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tVERSION\tSTATE\tCREATED")
	for _, r := range records {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\n", r.ID, r.Version, r.State, r.CreatedAt.Format("2006-01-02 15:04"))
	}
	return tw.Flush()
}

func (a *App) validateSchema(ctx context.Context, args []string) error {
	id, err := schemaIDArg("validate", args)
	if err != nil {
		return err
	}

	record, err := a.api.ValidateSchema(ctx, id)
	if err != nil {
		a.printViolations(err)
		return err
	}
	fmt.Fprintf(a.out, "schema %d (version %s) is %s\n", record.ID, record.Version, record.State)
	return nil
}

func (a *App) activateSchema(ctx context.Context, args []string) error {
	id, err := schemaIDArg("activate", args)
	if err != nil {
		return err
	}

	activation, err := a.api.ActivateSchema(ctx, id)
	if err != nil {
		return err
	}
	a.printActivation(activation)
	return nil
}

func (a *App) createOrganization(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: create-org <name>", ErrUsage)
	}

	org, err := a.api.CreateOrganization(ctx, args[0])
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "created organization %d (%s)\n", org.ID, org.Slug)
	return nil
}

func (a *App) getOrganization(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: org <ref>", ErrUsage)
	}

	org, err := a.api.GetOrganization(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printJSON(org)
}

func (a *App) setOverrides(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: set-overrides <ref> <file>", ErrUsage)
	}

	overrides, err := readOverridesFile(args[1])
	if err != nil {
		return err
	}

	config, err := a.api.ReplaceOverrides(ctx, args[0], overrides)
	if err != nil {
		a.printViolations(err)
		return err
	}
	return a.printEffectiveConfig(config)
}

func (a *App) effectiveConfig(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: effective <ref>", ErrUsage)
	}

	config, err := a.api.EffectiveConfig(ctx, args[0])
	if err != nil {
		return err
	}
	return a.printEffectiveConfig(config)
}

// preview resolves user-level overrides from a file on top of the
// organization's stored ones. Nothing is written.
func (a *App) preview(ctx context.Context, args []string) error {
	if len(args) != 2 {
		return fmt.Errorf("%w: preview <ref> <file>", ErrUsage)
	}

	user, err := readOverridesFile(args[1])
	if err != nil {
		return err
	}

	config, err := a.api.PreviewEffectiveConfig(ctx, args[0], user)
	if err != nil {
		a.printViolations(err)
		return err
	}
	return a.printEffectiveConfig(config)
}

func (a *App) issueToken(_ context.Context, args []string) error {
	fs := newFlagSet("token")
	role := fs.String("role", "", "caller role")
	env := fs.String("env", "", "caller environment")
	subject := fs.String("subject", "", "who the token is issued to")
	if err := fs.Parse(args); err != nil || fs.NArg() != 0 || *role == "" {
		return fmt.Errorf("%w: token -role ROLE [-env ENV] [-subject SUBJECT]", ErrUsage)
	}
	if a.tokens == nil {
		return ErrNoSignKey
	}

	token, err := a.tokens.Issue(models.CallerContext{Subject: *subject, Role: *role, Environment: *env})
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, token)
	return nil
}

func (a *App) health(ctx context.Context, args []string) error {
	status, err := a.api.Health(ctx)
	if err != nil && !errors.Is(err, adapter.ErrUnavailable) {
		return err
	}
	if printErr := a.printJSON(status); printErr != nil {
		return printErr
	}
	return err
}

func (a *App) printActivation(activation models.ActivationRecord) {
	if activation.PreviousSchemaID == 0 {
		fmt.Fprintf(a.out, "activated schema %d (version %s)\n", activation.SchemaID, activation.Version)
		return
	}
	fmt.Fprintf(a.out, "activated schema %d (version %s), superseding %d (version %s)\n",
		activation.SchemaID, activation.Version, activation.PreviousSchemaID, activation.PreviousVersion)
}

// printEffectiveConfig prints the values as JSON followed by one warning
// line per diagnostic.
func (a *App) printEffectiveConfig(config models.EffectiveConfig) error {
	if err := a.printJSON(config.Values); err != nil {
		return err
	}
	for _, d := range config.Diagnostics {
		fmt.Fprintf(a.out, "warning: %s.%s ignored (%s layer): %s\n", d.Namespace, d.Field, d.Layer, d.Reason)
	}
	return nil
}

// printViolations lists every violation carried by err, one per line.
func (a *App) printViolations(err error) {
	var violations []models.Violation

	var schemaViolations models.SchemaViolations
	var overrideViolations models.OverrideViolations
	switch {
	case errors.As(err, &schemaViolations):
		violations = schemaViolations
	case errors.As(err, &overrideViolations):
		violations = overrideViolations
	default:
		return
	}

	sorted := append([]models.Violation(nil), violations...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Path() < sorted[j].Path() })
	for _, v := range sorted {
		fmt.Fprintf(a.out, "  - %s\n", v)
	}
}

func (a *App) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// newFlagSet returns a flag set that reports parse errors instead of exiting.
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func schemaIDArg(command string, args []string) (int64, error) {
	if len(args) != 1 {
		return 0, fmt.Errorf("%w: %s <schema-id>", ErrUsage, command)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: schema id must be a positive integer", ErrUsage)
	}
	return id, nil
}

func readSchemaFile(path string) (models.SchemaDocument, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return models.SchemaDocument{}, fmt.Errorf("error reading schema file: %w", err)
	}
	return models.ParseSchemaDocument(data)
}

func readOverridesFile(path string) (models.Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading override file: %w", err)
	}
	return models.ParseOverrides(data)
}
