// Copyright (c) 2026 Pollcast Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - AdminRequest: password (list, close, delete)
  - CreatePollRequest: password, title, description, questions
  - QuestionInput: text, type, options (option texts in display order)
  - SetStatusRequest: password, active
  - SubmitVotesRequest: sessionId (optional), votes

Every admin request re-authenticates with the plaintext password field;
there is no session or token issuance.

# Response Types

Types for JSON responses:

  - CreatePollResponse: success, pollId
  - SuccessResponse: success
  - SubmitVotesResponse: success, sessionId
  - ErrorResponse: error, message

# Domain Types

  - Poll: lifecycle flags, timestamps, and the computed participant_count
    (distinct voting sessions across the whole poll, not vote rows)
  - Question: ordered, single or multiple choice, owns Options
  - Option: ordered per question
  - QRCodeEntry: questionText, qrCode (base64 PNG data URI), url

# Constants

Question types:

	QuestionTypeSingle   = "single"
	QuestionTypeMultiple = "multiple"
*/
package models
