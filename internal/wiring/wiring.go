// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/unifw/internal/adapters/cas"
	_ "go.trai.ch/unifw/internal/adapters/config"
	_ "go.trai.ch/unifw/internal/adapters/fs"
	_ "go.trai.ch/unifw/internal/adapters/lipo"
	_ "go.trai.ch/unifw/internal/adapters/logger"
	_ "go.trai.ch/unifw/internal/adapters/shell"
	_ "go.trai.ch/unifw/internal/adapters/telemetry/progrock"
	_ "go.trai.ch/unifw/internal/adapters/xcode"
	// Register app and engine nodes.
	_ "go.trai.ch/unifw/internal/app"
	_ "go.trai.ch/unifw/internal/engine/arch"
	_ "go.trai.ch/unifw/internal/engine/assembler"
	_ "go.trai.ch/unifw/internal/engine/header"
)
