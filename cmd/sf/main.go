// Copyright 2025 the original author or authors.
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

// Command sf works with planar simple-features datasets: it summarizes,
// reprojects, measures, buffers, relates and joins them from the command
// line.
package main

import (
	"github.com/madronegeo/sf/cmd/sf/cli"

	_ "github.com/madronegeo/sf/cmd/sf/buffer"
	_ "github.com/madronegeo/sf/cmd/sf/dist"
	_ "github.com/madronegeo/sf/cmd/sf/info"
	_ "github.com/madronegeo/sf/cmd/sf/join"
	_ "github.com/madronegeo/sf/cmd/sf/measure"
	_ "github.com/madronegeo/sf/cmd/sf/relate"
	_ "github.com/madronegeo/sf/cmd/sf/reproject"
)

func main() {
	cli.Execute()
}
