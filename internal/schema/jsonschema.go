package schema

// PageJSONSchema is the JSON Schema handed to extraction APIs that support
// structured output. It mirrors the Page/Item shape exactly, including the
// true-only continuation flag convention.
const PageJSONSchema = `{
  "type": "object",
  "properties": {
    "mag_title": {"type": ["string", "null"]},
    "issue_label": {"type": ["string", "null"]},
    "date_string": {"type": ["string", "null"]},
    "page_ref": {"type": ["string", "null"]},
    "items": {
      "type": "array",
      "items": {
        "type": "object",
        "properties": {
          "item_class": {"type": "string", "enum": ["prose", "verse", "ad", "paratext", "unknown"]},
          "item_text_raw": {"type": "string"},
          "item_title": {"type": ["string", "null"]},
          "item_author": {"type": ["string", "null"]},
          "is_continuation": {"type": ["boolean", "null"]},
          "continues_on_next_page": {"type": ["boolean", "null"]}
        },
        "required": ["item_class", "item_text_raw"]
      }
    }
  },
  "required": ["items"]
}`
