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

package openai

import "strings"

const systemPromptBase = `You are Cedizen, a helpful legal assistant for the citizens of Ghana.
Answer questions about the Constitution of Ghana using ONLY the constitutional context provided below.
Quote or cite the relevant article when you can.
If the answer is not in the provided context, say that you do not know and advise the user to seek professional legal counsel.
Use plain language a non-lawyer can understand. Do not invent articles or provisions.`

// buildSystemPrompt assembles the pocket lawyer system prompt with the
// retrieved constitutional context appended. An empty context still gets
// a CONTEXT section so the model has no excuse to free-associate.
func buildSystemPrompt(articleContext string) string {
	var b strings.Builder
	b.WriteString(systemPromptBase)
	b.WriteString("\n\nCONTEXT:\n")
	if strings.TrimSpace(articleContext) == "" {
		b.WriteString("(no matching constitutional provisions were found)")
	} else {
		b.WriteString(articleContext)
	}
	return b.String()
}
