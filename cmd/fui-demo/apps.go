package main

import (
	"os"

	"github.com/muurk/fui/pkg/feeder"
	"github.com/muurk/fui/pkg/field"
	"github.com/muurk/fui/pkg/form"
	"github.com/muurk/fui/pkg/fui"
	"github.com/muurk/fui/pkg/validators"
	"github.com/muurk/fui/pkg/widget"
)

var compressionFormats = []string{"none", "gzip", "bzip2"}

func compressionField() field.FormField {
	return field.Autocomplete("compression", feeder.NewList(compressionFormats)).
		Initial("gzip").
		Help("Archive format").
		Validator(validators.Required).
		Validator(validators.OneOf(compressionFormats...))
}

func cwd() string {
	dir, err := os.Getwd()
	if err != nil {
		return "."
	}
	return dir
}

// tarApp mirrors a few tar operations.
func tarApp(h fui.Handler, opts ...fui.Option) *fui.Fui {
	return fui.New(opts...).
		Action("ARCHIVE-FILES: Create an archive from files",
			form.New(form.WithTitle("Create an archive")).
				Field(field.Multiselect("files", feeder.CurrentDir()).
					Help("Files which should be archived").
					Validator(validators.Required).
					Validator(validators.FileExists)).
				Field(field.Autocomplete("target", feeder.CurrentDir(feeder.Files()), widget.SubmitAnything()).
					Help("Name of archive file").
					Validator(validators.Required).
					Validator(validators.PathFree)).
				Field(compressionField()),
			h).
		Action("EXTRACT-TO-DIR: Extract an archive in a target folder",
			form.New(form.WithTitle("Extract an archive")).
				Field(field.Autocomplete("archive-path", feeder.CurrentDir()).
					Help("Path to compressed file").
					Validator(validators.Required).
					Validator(validators.FileExists)).
				Field(field.Autocomplete("dst-dir", feeder.CurrentDir(feeder.Dirs())).
					Initial(cwd()).
					Help("Dir where extracted files should land").
					Validator(validators.Required).
					Validator(validators.DirExists)).
				Field(compressionField()),
			h).
		Action("LIST-ARCHIVE: List the contents of a tar file",
			form.New(form.WithTitle("List an archive")).
				Field(field.Autocomplete("archive-file", feeder.CurrentDir(feeder.Files())).
					Help("Path to archive").
					Validator(validators.FileExists)).
				Field(compressionField()),
			h)
}

// lnApp mirrors the two main forms of ln.
func lnApp(h fui.Handler, opts ...fui.Option) *fui.Fui {
	makeSymbolic := func(initial bool) field.FormField {
		return field.Checkbox("make_symbolic").
			Help("make symbolic links instead of hard links").
			Initial(initial)
	}
	return fui.New(opts...).
		Action("BASIC LINK: create a link to TARGET with the name LINK_NAME",
			form.New(form.WithTitle("Basic link")).
				Field(field.Autocomplete("TARGET", feeder.CurrentDir()).
					Help("Target of link").
					Validator(validators.Required)).
				Field(field.Autocomplete("LINK_NAME", feeder.CurrentDir(), widget.SubmitAnything()).
					Help("Destiny of link").
					Validator(validators.Required).
					Validator(validators.PathFree)).
				Field(makeSymbolic(true)),
			h).
		Action("MANY FILES, SINGLE DIR: create links to each TARGET in DIRECTORY",
			form.New(form.WithTitle("Many files, single dir")).
				Field(field.Multiselect("TARGET", feeder.CurrentDir()).
					Help("Target of link").
					Validator(validators.Required)).
				Field(field.Autocomplete("DIRECTORY", feeder.CurrentDir(feeder.Dirs())).
					Help("Directory where all links should be stored").
					Initial(cwd()).
					Validator(validators.Required).
					Validator(validators.DirExists)).
				Field(makeSymbolic(false)),
			h)
}

// showcaseForm holds one field of every kind.
func showcaseForm() *form.Form {
	options := []string{"op1", "op2", "op3"}
	return form.New(form.WithTitle("Fields showcase")).
		Field(field.Checkbox("verbose").Help("this is help for checkbox")).
		Field(field.Text("text-field").Help("this is help for text")).
		Field(field.Autocomplete("autocomplete-field", feeder.NewList(options)).
			Help("this is help for autocomplete")).
		Field(field.Multiselect("multiselect-field", feeder.NewFuzzy(options...)).
			Help("this is help for multiselect")).
		Field(field.Autocomplete("walk-field", feeder.NewWalk(".", feeder.Files(), feeder.NoHidden()), widget.WithWindow(8)).
			Help("files below the current directory")).
		Field(field.Autocomplete("home-field", feeder.HomeDir(feeder.Dirs(), feeder.NoHidden())).
			Help("directories in your home"))
}

// basicApp has two actions with a single text field each.
func basicApp(h fui.Handler, opts ...fui.Option) *fui.Fui {
	return fui.New(opts...).
		Action("ACTION1: description",
			form.New().Field(field.Text("action1 data").Help("help for action1 data")),
			h).
		Action("ACTION2: description",
			form.New().Field(field.Text("action2 data").Help("help for action2 data")),
			h)
}
