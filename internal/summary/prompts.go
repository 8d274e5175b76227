package summary

const reviewSummaryPrompt = `You are an expert business analyst. Analyze the following customer reviews for DanTV.

Reviews:
"""
%s
"""

Strictly return ONLY a valid, raw JSON object (no markdown, no surrounding backticks, no comments) in this exact shape:
{
  "summary": "<A concise executive summary of all reviews>",
  "strengths": ["<strength 1>", "<strength 2>"],
  "weaknesses": ["<weakness 1>", "<weakness 2>"],
  "recommendations": ["<recommendation 1>", "<recommendation 2>"]
}`

const emailSummaryPrompt = `You are an expert customer experience analyst. Summarize the following customer support emails for DanTV %s.

Emails:
"""
%s
"""

Strictly return ONLY a valid, raw JSON object (no markdown, no surrounding backticks, no comments) in this exact shape:
{
  "summary": "<A concise executive summary of the emails>",
  "strengths": ["<strength 1>", "<strength 2>"],
  "weaknesses": ["<weakness 1>", "<weakness 2>"],
  "recommendations": ["<recommendation 1>", "<recommendation 2>"]
}`
