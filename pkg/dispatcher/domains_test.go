package dispatcher

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/guess/pkg/errors"
	"github.com/arthur-debert/guess/pkg/types"
)

func TestLookupDomain(t *testing.T) {
	tests := []struct {
		name string
		want types.Domain
	}{
		{"time", types.DomainTimestamp},
		{"timestamp", types.DomainTimestamp},
		{"duration", types.DomainDuration},
		{"size", types.DomainByteSize},
		{"bytesize", types.DomainByteSize},
		{"bytes", types.DomainByteSize},
		{"number", types.DomainNumber},
		{"NUM", types.DomainNumber},
		{"color", types.DomainColor},
		{"colour", types.DomainColor},
		{"permission", types.DomainPermission},
		{"perm", types.DomainPermission},
		{"mode", types.DomainPermission},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LookupDomain(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupDomainUnknown(t *testing.T) {
	_, err := LookupDomain("weight")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrUnknownDomain))
}

func TestDomainAliases(t *testing.T) {
	assert.Equal(t, []string{"mode", "perm"}, DomainAliases(types.DomainPermission))
	assert.Empty(t, DomainAliases(types.DomainDuration))
}

func TestDomainNames(t *testing.T) {
	assert.Equal(t, []string{"number", "time", "duration", "size", "color", "permission"}, DomainNames())
	for _, name := range DomainNames() {
		_, err := LookupDomain(name)
		assert.NoError(t, err, name)
	}
}
