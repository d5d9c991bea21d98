/*
Copyright 2020 Google LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"

	"github.com/ademuri/hits-dashboard/internal/dataset"
	"github.com/ademuri/hits-dashboard/internal/logger"
	"github.com/ademuri/hits-dashboard/internal/store"
	"github.com/ademuri/hits-dashboard/internal/view"
)

var cfgFile string
var dataPath string
var yearsFlag string
var genreFlags []string
var genreScope string
var outputFormat string
var logLevel string
var logFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "hits-dashboard",
	Short: "Explores a dataset of hit songs",
	Long: `Loads a CSV (or SQLite) dataset of hit songs and prints dashboard views,
rankings and searches over it. The year range and genre filters apply to
every command.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return logger.InitLogger(logger.Config{
			Level:      logger.LogLevel(viper.GetString("log-level")),
			OutputPath: viper.GetString("log-file"),
			MaxSize:    10,
			MaxBackups: 3,
			MaxAge:     28,
		})
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	defer logger.Sync()
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default is $HOME/.hits-dashboard.yaml)")

	rootCmd.PersistentFlags().StringVarP(
		&dataPath, "data", "d", "./songs_normalize.csv", "Path to the dataset (CSV, or SQLite with a songs table)")
	viper.BindPFlag("data", rootCmd.PersistentFlags().Lookup("data"))

	rootCmd.PersistentFlags().StringVarP(
		&yearsFlag, "years", "y", "", "Year range to include, like '2005' or '2005:2010' (default is every year)")
	viper.BindPFlag("years", rootCmd.PersistentFlags().Lookup("years"))

	rootCmd.PersistentFlags().StringSliceVarP(
		&genreFlags, "genre", "g", nil, "Genres to include, repeatable (default is all genres)")
	viper.BindPFlag("genre", rootCmd.PersistentFlags().Lookup("genre"))

	rootCmd.PersistentFlags().StringVar(
		&genreScope, "genre-scope", string(view.ScopeDataset), "What 'all genres' covers: 'dataset' or 'years'")
	viper.BindPFlag("genre-scope", rootCmd.PersistentFlags().Lookup("genre-scope"))

	rootCmd.PersistentFlags().StringVarP(
		&outputFormat, "format", "f", "table", "Output format: 'table' or 'yaml'")
	viper.BindPFlag("format", rootCmd.PersistentFlags().Lookup("format"))

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn or error")
	viper.BindPFlag("log-level", rootCmd.PersistentFlags().Lookup("log-level"))

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Also write JSON logs to this file")
	viper.BindPFlag("log-file", rootCmd.PersistentFlags().Lookup("log-file"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	// A missing .env is normal.
	_ = godotenv.Load()

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".hits-dashboard" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".hits-dashboard")
	}

	viper.SetEnvPrefix("HITS")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}

	// See https://github.com/spf13/viper/pull/852
	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if viper.IsSet(f.Name) && viper.GetString(f.Name) != "" && !f.Changed {
			rootCmd.PersistentFlags().Set(f.Name, viper.GetString(f.Name))
		}
	})
}

// ViewConfig is the dataset and filter selection shared by every command.
type ViewConfig struct {
	DataPath   string
	Years      string
	Genres     []string
	GenreScope string
	Format     string
}

func viewConfigFromFlags() ViewConfig {
	return ViewConfig{
		DataPath:   viper.GetString("data"),
		Years:      viper.GetString("years"),
		Genres:     viper.GetStringSlice("genre"),
		GenreScope: viper.GetString("genre-scope"),
		Format:     viper.GetString("format"),
	}
}

func loadTracks(path string) ([]dataset.Track, error) {
	src, err := dataset.OpenSource(path, store.Open)
	if err != nil {
		return nil, err
	}
	if closer, ok := src.(io.Closer); ok {
		defer closer.Close()
	}
	return dataset.Load(src)
}

// openSession loads the dataset and applies the configured filters.
func openSession(config ViewConfig) (*view.Session, error) {
	tracks, err := loadTracks(config.DataPath)
	if err != nil {
		var dsErr *dataset.DataSourceError
		if errors.As(err, &dsErr) {
			logger.Error("loading dataset failed", logger.String("source", dsErr.Source), logger.ErrorField(dsErr.Err))
		}
		return nil, fmt.Errorf("loading dataset: %w", err)
	}
	return newSession(tracks, config)
}

func newSession(tracks []dataset.Track, config ViewConfig) (*view.Session, error) {
	scope, err := view.ParseGenreScope(config.GenreScope)
	if err != nil {
		return nil, err
	}
	session := view.NewSession(tracks, scope)

	if config.Years != "" {
		years, err := parseYearRange(config.Years)
		if err != nil {
			return nil, fmt.Errorf("--years: %w", err)
		}
		if err := session.SetYears(years); err != nil {
			return nil, fmt.Errorf("--years: %w", err)
		}
	}
	if len(config.Genres) > 0 {
		session.SelectGenres(config.Genres...)
	}
	return session, nil
}

func checkFormat(format string) error {
	switch format {
	case "", "table", "yaml":
		return nil
	}
	return fmt.Errorf("Invalid format %q: expected 'table' or 'yaml'", format)
}

// runAnalysis prints one analysis over the filtered view.
func runAnalysis(out io.Writer, config ViewConfig, a Analyser) error {
	session, err := openSession(config)
	if err != nil {
		return err
	}
	analysis, err := a.GetResults(session.View())
	if err != nil {
		return fmt.Errorf("%s: %w", a.GetName(), err)
	}
	fmt.Fprintf(out, "%s\n", a.GetName())
	fmt.Fprint(out, analysis)
	return nil
}
