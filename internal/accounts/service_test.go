package accounts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/qif/qif"
)

func TestNewService(t *testing.T) {
	chart := DefaultAccounts()
	svc, err := NewService(chart)
	require.NoError(t, err)

	assert.Len(t, svc.All(), len(chart))
}

func TestNewService_Duplicate(t *testing.T) {
	_, err := NewService([]*qif.Account{
		qif.NewAccount().WithName("Checking").Build(),
		qif.NewAccount().WithName("checking").Build(),
	})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate account")
}

func TestGetExists(t *testing.T) {
	svc, err := NewService(DefaultAccounts())
	require.NoError(t, err)

	acct, ok := svc.Get("checking")
	assert.True(t, ok)
	assert.Equal(t, "Checking", acct.Name())

	_, ok = svc.Get("Savings")
	assert.False(t, ok)

	assert.True(t, svc.Exists("CREDIT CARD"))
	assert.False(t, svc.Exists("Savings"))
}

func TestByType(t *testing.T) {
	svc, err := NewService(DefaultAccounts())
	require.NoError(t, err)

	for _, typ := range qif.AccountTypes() {
		got := svc.ByType(typ)
		require.Len(t, got, 1, "type %s", typ)
		assert.Equal(t, typ, got[0].Type())
	}
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	svc, err := NewService(DefaultAccounts())
	require.NoError(t, err)
	require.NoError(t, svc.Save(dir))

	loaded, err := Load(dir)
	require.NoError(t, err)
	require.Len(t, loaded.All(), len(svc.All()))

	for i, a := range svc.All() {
		got := loaded.All()[i]
		assert.Equal(t, a.Name(), got.Name())
		assert.Equal(t, a.Type(), got.Type())
		assert.Equal(t, a.Description(), got.Description())
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load(t.TempDir())
	assert.Error(t, err)
}
