//go:build tools

package tools

// gogio packages giocalc for mobile targets, see go:generate in giocalc.
import _ "gioui.org/cmd/gogio"
