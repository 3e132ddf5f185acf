// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package workload_test

import (
	"fmt"
	"io/ioutil"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

const logCategory = "workload"

var testingDirName string

func TestMain(m *testing.M) {
	dir, err := ioutil.TempDir("", "workload-test")
	if nil != err {
		fmt.Println("temp dir error: ", err)
		os.Exit(1)
	}
	testingDirName = dir

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}
	_ = logger.Initialise(logging)

	rc := m.Run()

	logger.Finalise()
	_ = os.RemoveAll(testingDirName)
	os.Exit(rc)
}
