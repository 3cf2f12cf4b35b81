//go:build !acidbasedebug

package assert

const Enabled = false
