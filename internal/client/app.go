// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"flag"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-recipe-keeper/internal/adapter"
	"github.com/MKhiriev/go-recipe-keeper/internal/logger"
	"github.com/MKhiriev/go-recipe-keeper/models"
)

type command struct {
	usage string
	run   func(ctx context.Context, args []string) error
}

type App struct {
	adapter   adapter.ServerAdapter
	out       io.Writer
	copyToken func(string) error
	commands  map[string]command
	logger    *logger.Logger
}

type AppOption func(*App)

// WithClipboard replaces the function used by "login -copy".
func WithClipboard(copyFn func(string) error) AppOption {
	return func(a *App) {
		a.copyToken = copyFn
	}
}

func NewApp(serverAdapter adapter.ServerAdapter, out io.Writer, logger *logger.Logger, opts ...AppOption) *App {
	a := &App{
		adapter:   serverAdapter,
		out:       out,
		copyToken: clipboard.WriteAll,
		logger:    logger,
	}
	for _, opt := range opts {
		opt(a)
	}

	a.commands = map[string]command{
		"register": {usage: "register -name NAME -email EMAIL -password PASSWORD", run: a.register},
		"login":    {usage: "login -email EMAIL -password PASSWORD [-copy]", run: a.login},
		"create":   {usage: "create -title T -ingredients I -instructions S [-description D]", run: a.create},
		"list":     {usage: "list", run: a.list},
		"mine":     {usage: "mine", run: a.mine},
		"get":      {usage: "get -id ID", run: a.get},
		"update":   {usage: "update -id ID -title T -ingredients I -instructions S [-description D]", run: a.update},
		"delete":   {usage: "delete -id ID", run: a.delete},
		"version":  {usage: "version", run: a.version},
	}

	return a
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		a.printUsage()
		return ErrNoCommand
	}

	cmd, ok := a.commands[args[0]]
	if !ok {
		a.printUsage()
		return fmt.Errorf("%w: %q", ErrUnknownCommand, args[0])
	}

	if err := cmd.run(ctx, args[1:]); err != nil {
		a.logger.Debug().Err(err).Str("command", args[0]).Msg("command failed")
		return err
	}
	return nil
}

func (a *App) printUsage() {
	names := make([]string, 0, len(a.commands))
	for name := range a.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("usage: recipe-client <command> [flags]\n\ncommands:\n")
	for _, name := range names {
		fmt.Fprintf(&b, "  %s\n", a.commands[name].usage)
	}
	fmt.Fprint(a.out, helpStyle.Render(b.String()), "\n")
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	name := fs.String("name", "", "display name")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	if err := parseFlags(fs, args, "name", "email", "password"); err != nil {
		return err
	}

	userID, err := a.adapter.Register(ctx, models.RegisterRequest{Name: *name, Email: *email, Password: *password})
	if err != nil {
		return err
	}

	a.success("Usuario registrado con id %d", userID)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "email address")
	password := fs.String("password", "", "password")
	copyToken := fs.Bool("copy", false, "copy the access token to the clipboard")
	if err := parseFlags(fs, args, "email", "password"); err != nil {
		return err
	}

	token, err := a.adapter.Login(ctx, models.LoginRequest{Email: *email, Password: *password})
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, token)
	if *copyToken {
		if err = a.copyToken(token); err != nil {
			return fmt.Errorf("copy token to clipboard: %w", err)
		}
		a.success("Token copiado al portapapeles")
	}
	return nil
}

func (a *App) create(ctx context.Context, args []string) error {
	fs := newFlagSet("create")
	input := recipeFlags(fs)
	if err := parseFlags(fs, args, "title", "ingredients", "instructions"); err != nil {
		return err
	}

	recipeID, err := a.adapter.CreateRecipe(ctx, *input)
	if err != nil {
		return err
	}

	a.success("Receta creada con id %d", recipeID)
	return nil
}

func (a *App) list(ctx context.Context, args []string) error {
	recipes, err := a.adapter.ListRecipes(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderRecipes(recipes, true))
	return nil
}

func (a *App) mine(ctx context.Context, args []string) error {
	recipes, err := a.adapter.ListMyRecipes(ctx)
	if err != nil {
		return err
	}
	if len(recipes) == 0 {
		fmt.Fprintln(a.out, helpStyle.Render("No tienes recetas todavía"))
		return nil
	}

	fmt.Fprintln(a.out, renderRecipes(recipes, false))
	return nil
}

func (a *App) get(ctx context.Context, args []string) error {
	fs := newFlagSet("get")
	id := fs.Int64("id", 0, "recipe id")
	if err := parseFlags(fs, args, "id"); err != nil {
		return err
	}

	recipe, err := a.adapter.GetRecipe(ctx, models.RecipeID(*id))
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, renderRecipe(recipe))
	return nil
}

func (a *App) update(ctx context.Context, args []string) error {
	fs := newFlagSet("update")
	id := fs.Int64("id", 0, "recipe id")
	input := recipeFlags(fs)
	if err := parseFlags(fs, args, "id", "title", "ingredients", "instructions"); err != nil {
		return err
	}

	if err := a.adapter.UpdateRecipe(ctx, models.RecipeID(*id), *input); err != nil {
		return err
	}

	a.success("Receta %d actualizada", *id)
	return nil
}

func (a *App) delete(ctx context.Context, args []string) error {
	fs := newFlagSet("delete")
	id := fs.Int64("id", 0, "recipe id")
	if err := parseFlags(fs, args, "id"); err != nil {
		return err
	}

	if err := a.adapter.DeleteRecipe(ctx, models.RecipeID(*id)); err != nil {
		return err
	}

	a.success("Receta %d eliminada", *id)
	return nil
}

func (a *App) version(ctx context.Context, args []string) error {
	v, err := a.adapter.ServerVersion(ctx)
	if err != nil {
		return err
	}

	fmt.Fprintln(a.out, v)
	return nil
}

func (a *App) success(format string, args ...any) {
	fmt.Fprintln(a.out, successStyle.Render(fmt.Sprintf(format, args...)))
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func recipeFlags(fs *flag.FlagSet) *models.RecipeInput {
	input := new(models.RecipeInput)
	fs.StringVar(&input.Title, "title", "", "recipe title")
	fs.StringVar(&input.Description, "description", "", "short description")
	fs.StringVar(&input.Ingredients, "ingredients", "", "ingredients")
	fs.StringVar(&input.Instructions, "instructions", "", "preparation steps")
	return input
}

// parseFlags parses args and checks that every flag in required was set.
func parseFlags(fs *flag.FlagSet, args []string, required ...string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	var missing []string
	for _, name := range required {
		if !set[name] {
			missing = append(missing, "-"+name)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w for %s: %s", ErrMissingFlag, fs.Name(), strings.Join(missing, ", "))
	}
	return nil
}
