// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package group

import (
	"os"
	"strconv"

	"k8s.io/klog/v2"
)

// FallbackEnvVar forces every SubGroup collective onto the software fallback
// path when set to a true value.
const FallbackEnvVar = "HWY_GROUP_FALLBACK"

// forceFallback is read once at init. WorkGroups ignore it since they have no
// fallback path.
var forceFallback = fallbackEnv()

func fallbackEnv() bool {
	val := os.Getenv(FallbackEnvVar)
	if val == "" {
		return false
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		klog.Warningf("group: cannot parse %s=%q as a boolean, treating it as true", FallbackEnvVar, val)
		return true
	}
	if b {
		klog.V(1).Infof("group: %s set, SubGroup collectives use the software fallback", FallbackEnvVar)
	}
	return b
}

// ForcedFallback reports whether HWY_GROUP_FALLBACK is in effect.
func ForcedFallback() bool {
	return forceFallback
}
