package registry

// Option configures the files a Registry offers beyond those of its Components.
type Option func(*options)

type options struct {
	extraValuesFiles         []string
	extraSecretValuesFiles   []string
	extraServicesValuesFiles []string
}

// ExtraValuesFiles adds scenario values files that no single Component owns.
func ExtraValuesFiles(files ...string) Option {
	return func(o *options) {
		o.extraValuesFiles = append(o.extraValuesFiles, files...)
	}
}

// ExtraSecretValuesFiles adds scenario secrets values files that no single Component owns.
func ExtraSecretValuesFiles(files ...string) Option {
	return func(o *options) {
		o.extraSecretValuesFiles = append(o.extraSecretValuesFiles, files...)
	}
}

// ExtraServicesValuesFiles adds the values files exposing services. They are only offered by
// ServicesValuesFiles.
func ExtraServicesValuesFiles(files ...string) Option {
	return func(o *options) {
		o.extraServicesValuesFiles = append(o.extraServicesValuesFiles, files...)
	}
}
