package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()

	for _, name := range []string{"serve", "seed"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		require.Equal(t, name, cmd.Name())
	}

	for _, flag := range []string{"port", "db-driver", "sqlite-path"} {
		require.NotNil(t, root.PersistentFlags().Lookup(flag), flag)
	}
}

func TestSetup_FlagsOverrideEnvironment(t *testing.T) {
	t.Setenv("GIN_MODE", "test")
	t.Setenv("PORT", "9000")
	t.Setenv("DB_DRIVER", "postgres")

	cfg, log, err := setup(flags{port: "9100", dbDriver: "sqlite", sqlitePath: "flag.db"})
	require.NoError(t, err)
	require.NotNil(t, log)
	require.Equal(t, "9100", cfg.Port)
	require.Equal(t, "sqlite", cfg.DBDriver)
	require.Equal(t, "flag.db", cfg.SQLitePath)
}

func TestSetup_RejectsUnknownDriver(t *testing.T) {
	t.Setenv("GIN_MODE", "test")

	_, _, err := setup(flags{dbDriver: "mysql"})
	require.Error(t, err)
}
