package dispatcher

import (
	"github.com/arthur-debert/guess/pkg/errors"
	"github.com/arthur-debert/guess/pkg/registry"
	"github.com/arthur-debert/guess/pkg/types"
)

var domainNames = newDomainRegistry()

func newDomainRegistry() *registry.Registry[types.Domain] {
	r := registry.New[types.Domain]()
	registry.MustRegister(r, types.DomainNumber.Command(), types.DomainNumber, "num")
	registry.MustRegister(r, types.DomainTimestamp.Command(), types.DomainTimestamp, "timestamp")
	registry.MustRegister(r, types.DomainDuration.Command(), types.DomainDuration)
	registry.MustRegister(r, types.DomainByteSize.Command(), types.DomainByteSize, "bytesize", "bytes")
	registry.MustRegister(r, types.DomainColor.Command(), types.DomainColor, "colour")
	registry.MustRegister(r, types.DomainPermission.Command(), types.DomainPermission, "perm", "mode")
	return r
}

// LookupDomain resolves a command name or alias to its domain
func LookupDomain(name string) (types.Domain, error) {
	d, err := domainNames.Get(name)
	if err != nil {
		return types.DomainNone, errors.Wrapf(err, errors.ErrUnknownDomain, "unknown domain %q", name).
			WithDetail(errors.DetailInput, name)
	}
	return d, nil
}

// DomainNames returns the command name of every domain, in dispatch order
func DomainNames() []string {
	return domainNames.List()
}

// DomainAliases returns the alternative names accepted for d
func DomainAliases(d types.Domain) []string {
	return domainNames.Aliases(d.Command())
}
