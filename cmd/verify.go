/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"

	"github.com/fatih/color"
	"github.com/k1LoW/favgen"
	"github.com/k1LoW/favgen/config"
	"github.com/spf13/cobra"
)

var verifyCmd = &cobra.Command{
	Use:   "verify [SET...]",
	Short: "verify generated icon files",
	Long: `verify generated icon files.

Each file is decoded, its dimensions and embedded sizes are checked,
and its pixels are compared with a fresh rendering.
If no set is specified, all sets are verified.`,
	ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		var names []string
		for _, s := range favgen.Sets() {
			names = append(names, s.Name)
		}
		return names, cobra.ShellCompDirectiveNoFileComp
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(profile)
		if err != nil {
			return err
		}
		sets := favgen.Sets()
		if len(args) > 0 {
			sets = nil
			for _, name := range args {
				s, err := favgen.Lookup(name)
				if err != nil {
					return err
				}
				sets = append(sets, s)
			}
		}
		var failed []string
		for _, s := range sets {
			if err := verifySet(cmd, s, outDir(cfg)); err != nil {
				failed = append(failed, s.Name)
			}
		}
		if len(failed) > 0 {
			return fmt.Errorf("verification failed: %v", failed)
		}
		return nil
	},
}

func verifySet(cmd *cobra.Command, s *favgen.Set, dir string) error {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	logger, stop, err := newLogger()
	if err != nil {
		return err
	}
	defer stop()

	results, err := favgen.Verify(s, dir)
	if err != nil {
		return err
	}
	for _, r := range results {
		if r.OK() {
			logger.Info("verified file", slog.String("path", r.Path))
		} else {
			logger.Error("failed to verify", slog.String("path", r.Path), slog.String("error", r.Err.Error()))
		}
	}
	logger.Info("verify completed", slog.String("set", s.Name))

	for _, r := range results {
		fmt.Fprintf(cmd.OutOrStdout(), "🔍 Checking %s ... ", r.Path)
		if r.OK() {
			green.Fprintln(cmd.OutOrStdout(), "✓ OK")
			continue
		}
		red.Fprintln(cmd.OutOrStdout(), "✗ NG")
		fmt.Fprintf(cmd.OutOrStdout(), "   %v\n", r.Err)
	}
	if favgen.Failed(results) {
		return fmt.Errorf("%s: some files are invalid", s.Name)
	}
	return nil
}

func init() {
	rootCmd.AddCommand(verifyCmd)
	verifyCmd.Flags().StringVarP(&out, "out", "o", "", "directory holding the icon files (default: outDir in config, or the current directory)")
}
