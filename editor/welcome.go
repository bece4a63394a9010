// Copyright (C) 2026 Michael J. Fromberger. All Rights Reserved.

package editor

// Welcome is the document shown when the viewer starts without input.
const Welcome = `{
  "welcome": "jview",
  "instructions": [
    "Paste your JSON in the editor pane",
    "View the collapsible tree in the tree pane",
    "Use the function keys to Format, Minify or Fix"
  ],
  "features": {
    "syntaxHighlighting": true,
    "collapsible": true,
    "aiPower": "Gemini 2.5 Flash"
  },
  "isNull": null,
  "count": 42
}`
