package main

// demoInput exercises nesting, escapes, BMP and astral unicode escapes,
// numbers and every keyword.
const demoInput = `
{
  "object": {
    "nested": {
      "key": "value"
    }
  },
  "array": [
    "first",
    "second",
    {
      "inner": "element"
    },
    [
      "nested",
      "array"
    ]
  ],
  "string": "A plain string",
  "escaped": "Line 1\nLine 2\tTabbed\rCarriage return\\Backslash\"Quoted",
  "unicode": "\u0048\u0065\u006c\u006c\u006f \u4e16\u754c",
  "surrogate_pair": "\ud83d\ude00\ud83c\udf08",
  "numbers": [0, -0, 42, 3.14159, -1.6e-19, 6.022E+23],
  "empty_string": "",
  "null_value": null,
  "boolean_true": true,
  "boolean_false": false
}`
