package ai

import "fmt"

// System-role instructions for the two completion calls the pipeline makes.
const (
	reorganizeSystem = "You are a helpful assistant that organizes video transcripts without altering their content."
	blogPostSystem   = "You are a helpful assistant that creates detailed blog posts from video transcripts and information."
)

// reorganizePrompt wraps one transcript chunk in the restructuring
// instruction. The provider is told to reorganize, not summarize, using
// the embedded timestamps to infer section boundaries.
func reorganizePrompt(chunk string) string {
	return fmt.Sprintf(`This is a portion of a video transcript. Please organize this content into the following structure:

For each distinct topic or section, include:
Product name (if applicable):
Starting timestamp:
Ending Timestamp:
Transcript:

The goal is to not summarize or alter any information, but just reorganize the existing transcript into this structure. Use the provided timestamps to determine the start and end times for each section.

Here's the transcript chunk:
%s

Please format the response as follows:

[Organized content here]
`, chunk)
}

// blogPostPrompt wraps the reorganized transcript and video fields in the
// blog-writing instruction.
func blogPostPrompt(processedTranscript, title, description string) string {
	return fmt.Sprintf(`Based on the following processed transcript and video information, create a comprehensive blog post. The blog post should include:

1. Title
2. Introduction
3. Main content with subheadings (including timestamps)
4. Key moments
5. Conclusion
6. Product links (if any mentioned in the video)
7. Affiliate information (if provided)
8. Camera and audio equipment used (if mentioned)

Video Title: %s
Video Description: %s

Processed Transcript:
%s

Please format the blog post accordingly, ensuring all relevant information from the video description is included. Include product links within the main content where relevant.
`, title, description, processedTranscript)
}
