// Copyright 2025 Poiesic Systems
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


// Package search provides full-text search over the constitutional corpus.
//
// The Engine type implements a two-pass search algorithm that combines:
//   - Broad-recall lookup through an inverted index over weighted,
//     field-concatenated search strings
//   - Precise keyword scoring with stop-word filtering, lightweight
//     stemming and bidirectional synonym expansion
//
// Results from both passes are fused into a single deduplicated list of at
// most five articles, index hits first. Every failure mode degrades to
// fewer or no results; search never returns an error.
package search
