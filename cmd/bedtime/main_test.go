package main

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCmd_RejectsArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"now"})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}

func TestRootCmd_FailsFastOnMissingConfig(t *testing.T) {
	for _, key := range []string{"OURA_TOKEN", "FRIEND_VENMO_USERNAME", "MY_EMAIL", "FRIEND_EMAIL", "EMAIL_APP_PASSWORD"} {
		t.Setenv(key, "")
	}

	cmd := newRootCmd()
	cmd.SetArgs([]string{})
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	assert.Error(t, cmd.Execute())
}
