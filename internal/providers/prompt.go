package providers

// ExtractionPrompt instructs vision models how to segment and transcribe a
// magazine page into the structured page format.
const ExtractionPrompt = `You are transcribing a page from a scanned historical literary magazine.

Segment the page into discrete text blocks (items) in natural reading order:
top to bottom, left to right, completing each column before the next. A
contribution spanning columns is ONE item.

For each item report:
- item_class: one of "prose", "verse", "ad", "paratext", "unknown"
- item_text_raw: the complete text exactly as printed. Preserve line breaks
  for verse; for prose use line breaks only at paragraph breaks. Join words
  hyphenated across lines, keep genuine compound hyphens. Preserve original
  capitalization, accents, and archaic spellings.
- item_title: the printed title or heading, null if absent
- item_author: the printed author attribution, null if absent
- is_continuation: true only when the item clearly continues from the
  previous page; omit the field otherwise
- continues_on_next_page: true only when the item clearly continues onto
  the next page; omit the field otherwise

Also report the page-level mag_title, issue_label, date_string, and
page_ref when printed, null otherwise.

Respond with a single JSON object following the provided schema.`
