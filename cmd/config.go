// config.go implements the "sid config" command for key-value settings.
//
// Design: mirrors the git config UX. With no arguments all keys print
// with their effective values; one argument gets a key; two arguments set
// it. Writes default to the global scope, --local targets .sid/config.yaml
// next to the dataset.

package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/saffron-lang/sid/internal/config"
	"github.com/saffron-lang/sid/internal/log"
)

var configLocal bool

var configCmd = &cobra.Command{
	Use:   "config [key [value]]",
	Short: "Get and set configuration",
	Long: `Read or write sid configuration.

  sid config                        # show all keys
  sid config data.dir               # show one key
  sid config data.dir datasets/sid  # set (global by default)

Valid keys: ` + strings.Join(config.ValidKeys(), ", "),
	Args: cobra.MaximumNArgs(2),
	RunE: runConfig,
}

func runConfig(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return configList()
	case 1:
		return configGet(args[0])
	default:
		return configSet(args[0], args[1])
	}
}

func configList() error {
	cfg, err := config.Load()
	if err != nil {
		return PrintJSONError(err)
	}

	all := cfg.All()
	if JSON() {
		return PrintJSON(all)
	}

	keys := make([]string, 0, len(all))
	for k := range all {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(Out(), "%s = %s\n", k, all[k])
	}
	return nil
}

func configGet(key string) error {
	cfg, err := config.Load()
	if err != nil {
		return PrintJSONError(err)
	}

	value, err := cfg.Get(key)
	if err != nil {
		return PrintJSONError(err)
	}

	if JSON() {
		return PrintJSON(map[string]string{key: value})
	}
	fmt.Fprintln(Out(), value)
	return nil
}

func configSet(key, value string) error {
	scope := config.ScopeGlobal
	if configLocal {
		scope = config.ScopeLocal
	}

	cfg, err := config.LoadScope(scope)
	if err != nil {
		return PrintJSONError(err)
	}
	if err := cfg.Set(key, value); err != nil {
		return PrintJSONError(err)
	}

	err = cfg.SaveScope(scope)

	log.Event("cli:config", "configure").Path(key).Detail("value", value).Write(err)

	if err != nil {
		return PrintJSONError(err)
	}
	return PrintJSON(map[string]string{key: value})
}

func init() {
	configCmd.Flags().BoolVar(&configLocal, "local", false, "Write to .sid/config.yaml instead of ~/.sid/config.yaml")
	rootCmd.AddCommand(configCmd)
}
