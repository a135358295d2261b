package main

import (
	"github.com/minichain/minichain/infrastructure/logger"
	"github.com/minichain/minichain/util/panics"
)

var log = logger.RegisterSubSystem("FSIM")
var spawn = panics.GoroutineWrapperFunc(log)
