// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"
	"sync"

	"github.com/hashicorp/go-multierror"
	"github.com/jcgregorio/logger"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/trainner-go/chroma/hwy/contrib/workerpool"
)

// Names of the persistent flags, also used as viper keys.
const (
	flagConfig  = "config"
	flagOutDir  = "out-dir"
	flagVerbose = "verbose"
	flagWorkers = "workers"
)

// rootEnv holds the configuration and resources shared by every command.
type rootEnv struct {
	v *viper.Viper

	outDir  string
	workers int
	log     *logger.Logger
	pool    *workerpool.Pool
}

// getRootCmd returns the colorconv command with all subcommands attached.
func getRootCmd() *cobra.Command {
	env := &rootEnv{v: viper.New()}
	cmd := &cobra.Command{
		Use:   "colorconv",
		Short: "Convert images between RGB, YCbCr, luma and Lab",
		Long: `
Converts .npy and .png images with the BT.601 YCbCr, pixel format, CIE L*
luma and normalized Lab transforms used to prepare image-restoration
training data.
`,
		SilenceUsage:       true,
		PersistentPreRunE:  env.setup,
		PersistentPostRunE: env.teardown,
	}

	flags := cmd.PersistentFlags()
	flags.String(flagConfig, "", "Optional config file (yaml, json or toml) providing flag values")
	flags.String(flagOutDir, "", "Directory for the results (default: next to each input)")
	flags.Bool(flagVerbose, false, "Log debug messages")
	flags.Int(flagWorkers, runtime.GOMAXPROCS(0), "Number of files and image spans processed concurrently")
	must(env.v.BindPFlags(flags))

	cmd.AddCommand(
		getYCbCrCmd(env),
		getFormatCmd(env),
		getLumaCmd(env),
		getLabCmd(env),
		getInfoCmd(env),
	)
	return cmd
}

// setup reads the configuration and creates the logger and worker pool.
func (e *rootEnv) setup(cmd *cobra.Command, _ []string) error {
	e.v.SetEnvPrefix("COLORCONV")
	e.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	e.v.AutomaticEnv()
	if path := e.v.GetString(flagConfig); path != "" {
		e.v.SetConfigFile(path)
		if err := e.v.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config %s: %w", path, err)
		}
	}

	e.outDir = e.v.GetString(flagOutDir)
	e.workers = e.v.GetInt(flagWorkers)
	if e.workers <= 0 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	e.log = logger.NewFromOptions(&logger.Options{
		SyncWriter:   os.Stderr,
		IncludeDebug: e.v.GetBool(flagVerbose),
	})
	e.pool = workerpool.New(e.workers)
	e.log.Debugf("%s: %d workers, out-dir %q", cmd.Name(), e.workers, e.outDir)
	return nil
}

func (e *rootEnv) teardown(_ *cobra.Command, _ []string) error {
	if e.pool != nil {
		e.pool.Close()
	}
	return nil
}

// forEachFile runs fn on every distinct file, at most e.workers at a time.
// A failing file does not stop the others; all failures are returned
// together.
func (e *rootEnv) forEachFile(ctx context.Context, files []string, fn func(path string) error) error {
	var (
		mu   sync.Mutex
		errs *multierror.Error
	)
	var g errgroup.Group
	g.SetLimit(e.workers)
	for _, path := range lo.Uniq(files) {
		g.Go(func() error {
			err := ctx.Err()
			if err == nil {
				err = fn(path)
			}
			if err != nil {
				e.log.Errorf("%s: %s", path, err)
				mu.Lock()
				errs = multierror.Append(errs, fmt.Errorf("%s: %w", path, err))
				mu.Unlock()
				return nil
			}
			e.log.Debugf("%s: done", path)
			return nil
		})
	}
	_ = g.Wait()
	return errs.ErrorOrNil()
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
