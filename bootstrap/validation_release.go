//go:build release

package bootstrap

const validationDefault = false
