package chat

import "fmt"

// systemPrompt gives strict directions and the JSON schema for the review.
// The enum values here must stay in sync with model.Review's validate tags.
func systemPrompt() string {
	return `You are an experienced storytelling and public speaking coach. You must produce one valid JSON object only (no markdown, no commentary, no code fences) that follows the schema below.

Requirements:
- Output must be a single JSON object.
- "summary" is a concise summary of the main message and narrative arc.
- "story_strength" must be exactly one of: weak, average, good, strong, excellent.
- "story_length" must be exactly one of: too short, just right, too long.
- "suggestions" is an array of specific, actionable recommendations for improving structure, storytelling impact, and audience engagement.

Schema (example with empty values):
{
  "summary": "<string>",
  "story_strength": "<weak|average|good|strong|excellent>",
  "story_length": "<too short|just right|too long>",
  "suggestions": ["<string>"]
}`
}

// userPrompt wraps the transcript for the chat request.
func userPrompt(transcript string) string {
	return fmt.Sprintf("Review the following speech transcript and respond with the JSON per schema.\n\nTranscript:\n%s", transcript)
}
