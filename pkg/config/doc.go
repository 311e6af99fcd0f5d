// Copyright 2025 walteh LLC
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

/*
Package config loads the optional per-tree settings file for drename.

	            +-------------+
	            |   Config    |
	            | (Settings)  |
	            +------+------+
	                   |
	      +------------+------------+
	      |            |            |
	+-----+-----+ +----+----+ +-----+-----+
	|   YAML    | |  JSON   | |    HCL    |
	|  Parser   | | Parser  | |  Parser   |
	+-----------+ +---------+ +-----------+

🎯 Purpose:
- Finds a .drename.{yaml,yml,json,hcl} file next to the tree being renamed
- Parses it with the parser registered for its extension
- Validates ignore globs before any walk starts

🔄 Flow:
1. Discover looks for the default file names in the root directory
2. Load picks a parser by extension and decodes strictly (unknown keys fail)
3. Validate normalizes and checks the ignore globs
4. Command line flags are layered on top by the caller

🔍 Example:

	cfg, path, err := config.Discover(ctx, root)
	if err != nil {
		return err
	}
	if path == "" {
		// no file, cfg holds the defaults
	}

An HCL file may read the environment:

	ignore  = ["vendor/**", "${env.BUILD_DIR}/**"]
	dry_run = true
*/
package config
