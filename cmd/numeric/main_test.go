package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/govalues/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(new(bytes.Buffer))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestCalc(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"calc", "--type", "5,2", "1.5", "+", "2.25"}, "3.75\n"},
		{[]string{"calc", "--type", "10,4", "1", "/", "3"}, "0.3333\n"},
		{[]string{"calc", "--type", "1,0", "--rounding", "half_even", "2.5", "+", "0"}, "2\n"},
		{[]string{"calc", "--type", "1,0", "2.5", "+", "0"}, "3\n"},
		{[]string{"calc", "--type", "4,0", "2", "**", "10"}, "1024\n"},
		{[]string{"calc", "--type", "3,1", "--", "abs", "-2.5"}, "2.5\n"},
		{[]string{"calc", "--type", "1,0", "--", "floor", "-1.5"}, "-2\n"},
		{[]string{"calc", "1.50", "cmp", "1.5"}, "0\n"},
		{[]string{"calc", "--", "-1", "cmp", "1"}, "-1\n"},
	}
	for _, tt := range tests {
		got, err := run(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, got, "%v", tt.args)
	}
}

func TestCalc_Errors(t *testing.T) {
	_, err := run(t, "calc", "1", "/", "0")
	assert.Equal(t, numeric.DivisionByZero, numeric.KindOf(err))

	_, err = run(t, "calc", "--type", "3,0", "999", "+", "1")
	assert.ErrorIs(t, err, numeric.Overflow)

	_, err = run(t, "calc", "1", "%", "2")
	assert.ErrorContains(t, err, "unknown operator")

	_, err = run(t, "calc", "sqrt", "2")
	assert.ErrorContains(t, err, "unknown function")

	_, err = run(t, "calc", "1.2.3", "+", "1")
	assert.Equal(t, numeric.ConversionSyntax, numeric.KindOf(err))

	_, err = run(t, "calc", "--type", "NUMERIC(35,0)", "1", "+", "1")
	assert.Error(t, err)
}

func TestInfer(t *testing.T) {
	got, err := run(t, "infer", "--", "0.00123", "22e3", "-0.00")
	require.NoError(t, err)
	assert.Equal(t, "0.00123\tNUMERIC(5,5)\t0.00123\n22e3\tNUMERIC(5,0)\t22000\n-0.00\tNUMERIC(2,2)\t0.00\n", got)

	_, err = run(t, "infer", "1e34")
	assert.ErrorIs(t, err, numeric.Overflow)
}

func TestRound(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"round", "--type", "8,4", "--", "1234.5678", "-2"}, "1200.0000\n"},
		{[]string{"round", "--type", "8,4", "1234.5678", "2"}, "1234.5700\n"},
		{[]string{"round", "--type", "8,4", "--trunc", "1234.5678", "2"}, "1234.5600\n"},
		{[]string{"round", "--type", "2,0", "--trunc", "--", "-15", "-1"}, "-10\n"},
		{[]string{"round", "--type", "4,0", "--", "999", "-3"}, "1000\n"},
	}
	for _, tt := range tests {
		got, err := run(t, tt.args...)
		require.NoError(t, err, "%v", tt.args)
		assert.Equal(t, tt.want, got, "%v", tt.args)
	}

	_, err := run(t, "round", "--type", "3,0", "--", "999", "-3")
	assert.ErrorIs(t, err, numeric.Overflow)

	_, err = run(t, "round", "1", "two")
	assert.Error(t, err)
}

func TestConvert(t *testing.T) {
	tests := []struct {
		to, value, want string
	}{
		{"string", "1.5", "1.50\n"},
		{"raw", "-1.5", "-150e-2\n"},
		{"int32", "-1.5", "-1\n"},
		{"int64", "-1.5", "-1\n"},
		{"round-int64", "-1.5", "-2\n"},
		{"float64", "0.25", "0.25\n"},
		{"coef", "-1.5", "150\n"},
		{"shopspring", "-1.5", "-1.5\n"},
	}
	for _, tt := range tests {
		got, err := run(t, "convert", "--type", "5,2", "--to", tt.to, "--", tt.value)
		require.NoError(t, err, "convert --to %v %v", tt.to, tt.value)
		assert.Equal(t, tt.want, got, "convert --to %v %v", tt.to, tt.value)
	}

	_, err := run(t, "convert", "--to", "hex", "1")
	assert.ErrorContains(t, err, "unknown representation")
}

func TestEval(t *testing.T) {
	got, err := run(t, "eval", "--type", "20,2", "* 10 + 1.23 4.56")
	require.NoError(t, err)
	assert.Equal(t, "57.90\n", got)

	got, err = run(t, "eval", "--type", "5,2", "--", "abs", "-", "1", "3")
	require.NoError(t, err)
	assert.Equal(t, "2.00\n", got)

	_, err = run(t, "eval", "/ 1 0")
	assert.Equal(t, numeric.DivisionByZero, numeric.KindOf(err))

	_, err = run(t, "eval", "+ 1")
	assert.ErrorContains(t, err, "not enough operands")

	_, err = run(t, "eval", "1 2")
	assert.ErrorContains(t, err, "expected exactly one item")
}

func TestNewLogger(t *testing.T) {
	for _, level := range []zapcore.Level{zapcore.DebugLevel, zapcore.InfoLevel, zapcore.ErrorLevel} {
		log, err := newLogger(level)
		require.NoError(t, err)
		assert.True(t, log.Core().Enabled(level))
		assert.False(t, log.Core().Enabled(level-1))
	}

	_, err := run(t, "calc", "--log-level", "debug", "1", "+", "1")
	assert.NoError(t, err)
	_, err = run(t, "calc", "--log-level", "loud", "1", "+", "1")
	assert.ErrorContains(t, err, "log-level")
}

func TestConfig(t *testing.T) {
	got, err := run(t, "config")
	require.NoError(t, err)

	var cfg Config
	_, err = toml.Decode(got, &cfg)
	require.NoError(t, err, got)
	assert.Equal(t, NewDefaultConfig(), cfg)
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()

	path := filepath.Join(dir, "numeric.toml")
	data := "type = \"NUMERIC(10,2)\"\nrounding = \"half_even\"\nlog_level = \"error\"\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, numeric.MustNewType(10, 2), cfg.Type)
	assert.Equal(t, numeric.HalfEven, cfg.Rounding)
	assert.Equal(t, zapcore.ErrorLevel, cfg.Level)

	got, err := run(t, "calc", "--config", path, "0.125", "+", "0")
	require.NoError(t, err)
	assert.Equal(t, "0.12\n", got)

	got, err = run(t, "calc", "--config", path, "--rounding", "up", "0.121", "+", "0")
	require.NoError(t, err)
	assert.Equal(t, "0.13\n", got)

	partial := filepath.Join(dir, "partial.toml")
	require.NoError(t, os.WriteFile(partial, []byte("rounding = \"floor\"\n"), 0o600))
	cfg, err = LoadConfig(partial)
	require.NoError(t, err)
	assert.Equal(t, NewDefaultConfig().Type, cfg.Type)
	assert.Equal(t, numeric.Floor, cfg.Rounding)

	unknown := filepath.Join(dir, "unknown.toml")
	require.NoError(t, os.WriteFile(unknown, []byte("precision = 10\n"), 0o600))
	_, err = LoadConfig(unknown)
	assert.ErrorContains(t, err, "unknown keys")

	bad := filepath.Join(dir, "bad.toml")
	require.NoError(t, os.WriteFile(bad, []byte("type = \"NUMERIC(0,0)\"\n"), 0o600))
	_, err = LoadConfig(bad)
	assert.Error(t, err)

	_, err = LoadConfig(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
}
