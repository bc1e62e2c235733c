// CineMatch - Movie Recommendation Engine
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinematch

/*
Package supervisor provides process supervision for CineMatch using suture v4.

The tree organizes long-running services into two layers:

	RootSupervisor ("cinematch")
	├── APISupervisor ("api-layer")
	│   └── HTTPServerService
	└── ConsoleSupervisor ("console-layer")
	    └── ConsoleService (if CONSOLE_ENABLED)

A crashed service is restarted inside its own layer. Failures decay over
FailureDecay seconds; past FailureThreshold the layer waits FailureBackoff
before the next restart. Supervisor events are logged through sutureslog,
which main wires to the zerolog global logger via logging.NewSlogLogger.

# Usage Example

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.DefaultTreeConfig())
	if err != nil {
	    return err
	}
	tree.AddAPIService(services.NewHTTPServerService(server, addr, cfg.Server.ShutdownTimeout))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	err = tree.Serve(ctx)

Serve returns when the context is canceled or when a service returns
suture.ErrTerminateSupervisorTree, which the console does when the user
chooses to exit.

# Debugging Shutdown Issues

Services that outlive ShutdownTimeout show up in UnstoppedServiceReport.
*/
package supervisor
