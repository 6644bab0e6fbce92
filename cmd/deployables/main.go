package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/element-hq/ess-helm-deployables/cmd/deployables/describe"
	"github.com/element-hq/ess-helm-deployables/cmd/deployables/list"
	"github.com/element-hq/ess-helm-deployables/cmd/deployables/owners"
	"github.com/element-hq/ess-helm-deployables/cmd/deployables/property"
	"github.com/element-hq/ess-helm-deployables/cmd/deployables/valuesfiles"
	"github.com/element-hq/ess-helm-deployables/cmd/deployables/version"
	"github.com/element-hq/ess-helm-deployables/cmd/deployables/vet"
	"github.com/element-hq/ess-helm-deployables/pkg/util/log"
	pkgversion "github.com/element-hq/ess-helm-deployables/pkg/version"
	"github.com/spf13/cobra"
	"k8s.io/klog/v2"
)

var (
	rootCmd = &cobra.Command{
		Use: "deployables",
		Short: fmt.Sprintf(
			"Inspect the deployables of the matrix-stack chart and where they are configured (version %v)", pkgversion.VERSION),
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			log.Setup(flag.CommandLine)
		},
	}
)

func init() {
	rootCmd.AddCommand(list.Cmd)
	rootCmd.AddCommand(property.PathCmd)
	rootCmd.AddCommand(property.GetCmd)
	rootCmd.AddCommand(describe.Cmd)
	rootCmd.AddCommand(valuesfiles.Cmd)
	rootCmd.AddCommand(owners.Cmd)
	rootCmd.AddCommand(vet.Cmd)
	rootCmd.AddCommand(version.Cmd)
}

func main() {
	klog.InitFlags(flag.CommandLine)
	rootCmd.PersistentFlags().AddGoFlagSet(flag.CommandLine)
	// klog gripes if you don't parse flags before making any logging statements.
	flag.CommandLine.Parse([]string{}) // nolint:errcheck
	defer klog.Flush()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
