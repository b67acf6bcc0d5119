package app

import (
	"github.com/mk/hookline/internal/hook"
	"github.com/mk/hookline/plugins/broadcast"
	"github.com/mk/hookline/plugins/envinfo"
	"github.com/mk/hookline/plugins/sitemeta"
	"github.com/mk/hookline/plugins/webhook"
)

// corePlugins is the definitive list of all plugins that are compiled into
// the hookline binary.
var corePlugins = []hook.Plugin{
	sitemeta.New(),
	envinfo.New(),
	webhook.New(),
	broadcast.New(),
}
