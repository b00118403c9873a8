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

	"github.com/k1LoW/favgen"
	"github.com/k1LoW/favgen/config"
	"github.com/spf13/cobra"
)

var (
	out    string
	dryRun bool
	check  bool
)

// newGenerateCmd returns a command that writes the files of one icon set.
func newGenerateCmd(set func() *favgen.Set, short string) *cobra.Command {
	s := set()
	c := &cobra.Command{
		Use:   s.Name,
		Short: short,
		Long:  fmt.Sprintf("%s.\n\n%s", short, targetList(s)),
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s := set()
			if dryRun {
				b, err := s.Manifest()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(b))
				return nil
			}
			cfg, err := config.Load(profile)
			if err != nil {
				return err
			}
			dir := outDir(cfg)
			logger, stop, err := newLogger()
			if err != nil {
				return err
			}
			defer stop()
			g, err := favgen.New(favgen.WithOutDir(dir), favgen.WithLogger(logger))
			if err != nil {
				return err
			}
			paths, err := g.Generate(cmd.Context(), s)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Generated:")
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", p)
			}
			if check || cfg.VerifyEnabled() {
				return verifySet(cmd, s, dir)
			}
			return nil
		},
	}
	c.Flags().StringVarP(&out, "out", "o", "", "output directory (default: outDir in config, or the current directory)")
	c.Flags().BoolVarP(&dryRun, "dry-run", "", false, "print the files that would be written as JSON")
	c.Flags().BoolVarP(&check, "verify", "", false, "verify the written files")
	return c
}

func outDir(cfg *config.Config) string {
	if out != "" {
		return out
	}
	if cfg.OutDir != "" {
		return cfg.OutDir
	}
	return "."
}

func targetList(s *favgen.Set) string {
	l := "Outputs:"
	for _, t := range s.Targets {
		l += fmt.Sprintf("\n  %s (%dx%d %s)", t.Name, t.Size, t.Size, t.Format)
	}
	return l
}

func init() {
	rootCmd.AddCommand(newGenerateCmd(favgen.Favicon, "generate favicon.ico, favicon PNGs and apple-touch-icon.png"))
	rootCmd.AddCommand(newGenerateCmd(favgen.Mytab, "generate mytab app icons"))
}
