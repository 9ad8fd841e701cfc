// Package help holds the text printed by 'fatigue-explorer quickstart'.
package help

const QuickstartYAML = `# fatigue-explorer Quick Start

categories:
  cognitive: "cognitive fatigue related to peptides"
  physical: "physical fatigue related to peptides"
  emotional: "emotional fatigue related to peptides"
  general: "general peptide discussion, no fatigue mentioned"
  fatigue-not-peptides: "fatigue mentioned, but not related to peptides"
  irrelevant: "irrelevant or other topic"

commands:
  serve_file: |
    fatigue-explorer serve --catalog comments.json --addr :8080

  serve_remote: |
    fatigue-explorer serve --catalog https://example.com/comments.json --cache-ttl 6h

  import_to_sqlite: |
    fatigue-explorer catalog import --from comments.json --db catalog.db --min-confidence 0.7
    fatigue-explorer serve --db catalog.db

  inspect: |
    fatigue-explorer catalog inspect --db catalog.db

  query_offline: |
    fatigue-explorer query --category cognitive
    fatigue-explorer query --mode summary --format json

  report: |
    fatigue-explorer report --out reports/summary.yaml --top 25

http:
  category: "GET /api/comments?category=cognitive -> {comments, words}"
  summary: "GET /api/comments?mode=summary -> {cognitive: N, ...}"
  threshold: "GET /api/comments?category=physical&min_confidence=0.8"
  legacy_route: "GET /.netlify/functions/get-comments?category=cognitive"
  health: "GET /health -> {status: healthy, comments: N}"

environment:
  - "FATIGUE_CONFIG: YAML config file"
  - "FATIGUE_CATALOG: catalog path or URL"
  - "FATIGUE_DB: SQLite catalog database"
  - "FATIGUE_ADDR: listen address"
`
