package log

import (
	"flag"

	"github.com/element-hq/ess-helm-deployables/pkg/version"
	"k8s.io/klog/v2"
)

// Setup sets up default logging configs for the binaries and logs the preamble.
//
// fs must be the FlagSet klog.InitFlags registered its flags on.
func Setup(fs *flag.FlagSet) {
	if err := fs.Set("logtostderr", "true"); err != nil {
		klog.Fatal(err)
	}
	klog.V(1).Infof("Build Version: %s", version.VERSION)
}
