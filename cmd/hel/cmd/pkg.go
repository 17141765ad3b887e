package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/cwbudde/go-hel/pkg/hel"
)

var pkgSearchPaths []string

var pkgCmd = &cobra.Command{
	Use:   "pkg",
	Short: "Resolve and inspect schema packages",
}

var pkgResolveCmd = &cobra.Command{
	Use:   "resolve <package>",
	Short: "Print a package's dependency closure in topological order",
	Args:  cobra.ExactArgs(1),
	RunE:  runPkgResolve,
}

var pkgTypesCmd = &cobra.Command{
	Use:   "types <package>",
	Short: "Print a package's qualified type environment",
	Args:  cobra.ExactArgs(1),
	RunE:  runPkgTypes,
}

func init() {
	rootCmd.AddCommand(pkgCmd)
	pkgCmd.AddCommand(pkgResolveCmd)
	pkgCmd.AddCommand(pkgTypesCmd)

	pkgCmd.PersistentFlags().StringArrayVar(&pkgSearchPaths, "search-path", nil,
		"a package search path (repeatable); falls back to $HEL_PACKAGE_PATH")
}

// newPackageRegistry builds a PackageRegistry from --search-path flags,
// falling back to the colon-separated HEL_PACKAGE_PATH environment variable
// when no flag was given.
func newPackageRegistry() *hel.PackageRegistry {
	paths := pkgSearchPaths
	if len(paths) == 0 {
		if env := os.Getenv("HEL_PACKAGE_PATH"); env != "" {
			paths = strings.Split(env, string(filepath.ListSeparator))
		}
	}

	reg := hel.NewPackageRegistry()
	for _, p := range paths {
		reg.AddSearchPath(p)
	}
	return reg
}

func runPkgResolve(_ *cobra.Command, args []string) error {
	reg := newPackageRegistry()
	verbosef("search paths: %v", pkgSearchPaths)
	resolved, err := reg.ResolveAll(args[0])
	if err != nil {
		return err
	}
	verbosef("resolved %d package(s) in dependency order", len(resolved))
	for _, name := range resolved {
		fmt.Println(name)
	}
	return nil
}

func runPkgTypes(_ *cobra.Command, args []string) error {
	reg := newPackageRegistry()
	resolved, err := reg.ResolveAll(args[0])
	if err != nil {
		return err
	}
	env, err := reg.BuildTypeEnvironment(resolved)
	if err != nil {
		return err
	}
	verbosef("type environment has %d qualified type(s)", len(env.Types))
	// env.Validate() is deliberately not called here: it only resolves
	// TypeRefs already spelled package-qualified (§4.8), so an ordinary
	// package whose fields reference same-package types by their bare name
	// would fail a check that isn't about this command's purpose.

	names := make([]string, 0, len(env.Types))
	for name := range env.Types {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Println(name)
	}
	return nil
}
