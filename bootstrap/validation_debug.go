//go:build !release

package bootstrap

const validationDefault = true
