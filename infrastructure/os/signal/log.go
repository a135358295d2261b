// Copyright (c) 2013-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package signal

import (
	"github.com/minichain/minichain/infrastructure/logger"
	"github.com/minichain/minichain/util/panics"
)

var log = logger.RegisterSubSystem("SGNL")
var spawn = panics.GoroutineWrapperFunc(log)
