/*
 * Copyright (c) 2020 Siemens AG
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy of
 * this software and associated documentation files (the "Software"), to deal in
 * the Software without restriction, including without limitation the rights to
 * use, copy, modify, merge, publish, distribute, sublicense, and/or sell copies of
 * the Software, and to permit persons to whom the Software is furnished to do so,
 * subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY, FITNESS
 * FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE AUTHORS OR
 * COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER LIABILITY, WHETHER
 * IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM, OUT OF OR IN
 * CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE SOFTWARE.
 *
 * Author(s): Jonas Plum
 */

package sigma

// ruleSchemaJSON mirrors the structure the Sigma rule specification
// requires. Detections need a condition plus at least one search
// identifier.
const ruleSchemaJSON = `{
  "$schema": "https://json-schema.org/draft/2019-09/schema",
  "title": "sigma-rule",
  "type": "object",
  "required": ["title", "logsource", "detection"],
  "properties": {
    "title": {
      "type": "string",
      "maxLength": 256
    },
    "id": {
      "type": "string",
      "pattern": "^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$"
    },
    "status": {
      "type": "string",
      "enum": ["stable", "test", "experimental", "deprecated", "unsupported"]
    },
    "description": {
      "type": "string"
    },
    "author": {
      "type": "string"
    },
    "references": {
      "type": "array",
      "items": {"type": "string"}
    },
    "tags": {
      "type": "array",
      "items": {"type": "string"}
    },
    "logsource": {
      "type": "object",
      "properties": {
        "product": {"type": "string"},
        "category": {"type": "string"},
        "service": {"type": "string"},
        "definition": {"type": "string"}
      }
    },
    "detection": {
      "type": "object",
      "required": ["condition"],
      "minProperties": 2,
      "properties": {
        "condition": {
          "type": ["string", "array"]
        }
      }
    },
    "fields": {
      "type": "array",
      "items": {"type": "string"}
    },
    "falsepositives": {
      "type": "array",
      "items": {"type": "string"}
    },
    "level": {
      "type": "string",
      "enum": ["informational", "low", "medium", "high", "critical"]
    }
  }
}`
