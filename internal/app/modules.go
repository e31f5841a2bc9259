package app

import (
	"github.com/vk/msgfeatures/internal/registry"
	"github.com/vk/msgfeatures/modules/bagofwords"
	"github.com/vk/msgfeatures/modules/classifier"
	"github.com/vk/msgfeatures/modules/emoji"
	"github.com/vk/msgfeatures/modules/langdetect"
	"github.com/vk/msgfeatures/modules/pos"
	"github.com/vk/msgfeatures/modules/purity"
	"github.com/vk/msgfeatures/modules/textstats"
)

// coreModules is the definitive list of all feature modules that are
// compiled into the msgfeatures binary.
var coreModules = []registry.Module{
	&bagofwords.Module{},
	&textstats.Module{},
	&emoji.Module{},
	&purity.Module{},
	&pos.Module{},
	&classifier.Module{},
	&langdetect.Module{},
}
