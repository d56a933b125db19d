// Package snippet loads the code snippets the animator types out.
//
// # Overview
//
// A snippet collection is a JSON or YAML document in the same shape as the
// landing page's code.json:
//
//	{
//	  "codeSnippets": [
//	    {"language": "Go", "description": "Worker pool", "code": ["package worker", "..."]}
//	  ]
//	}
//
// A bare list of snippets is also accepted. The decoder is chosen from the
// file extension (.yaml/.yml for YAML, anything else JSON); for URLs a YAML
// Content-Type also selects YAML.
//
// # Sources
//
//   - File paths, with ~ expansion: LoadFile
//   - http:// and https:// URLs: Client.Fetch
//
// # Fallback
//
// LoadOrDefault never fails. An empty source, a read/fetch/parse error, or a
// collection where no snippet has code all yield Defaults, with the reason in
// Result.Err so the caller can log it. Missing content is a recovered
// condition and is not shown to the user.
package snippet
