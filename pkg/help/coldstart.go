package help

const ColdstartYAML = `# beatgen Quick Start

template_types:
  concept-tutorial: "Intro sections plus interactive decision scenarios"
  strategic-framework: "2x2 quadrant framework with axis definitions"

source_formats:
  markdown: "Headings, bullets, links (.md)"
  transcript: "Speaker turns with optional timestamps"
  text: "Plain paragraphs with importance scoring (.txt)"
  html: "Distilled to text first (.html, .htm)"

commands:
  manual_flow: |
    # Step 1: Parse source and build prompts
    beatgen prepare --source notes.md --type concept-tutorial --name ml-basics

    # Step 2: Run the prompts through any model, save the JSON response

    # Step 3: Validate and save the Beat
    beatgen finalize --prompts beats/ml-basics-prompts.json --response response.json

  api_flow: |
    export ANTHROPIC_API_KEY=sk-ant-...
    beatgen generate --source notes.md --type concept-tutorial --name ml-basics

  framework: |
    beatgen generate --source interview.txt --type strategic-framework \
      --x-axis "innovatiesnelheid" --y-axis "datamaturiteit"

  catalog: |
    beatgen catalog list
    beatgen catalog rebuild

  history: |
    beatgen db generations
    beatgen db generation <id>

key_files:
  - "beats/<id>/constants.tsx (generated Beat content)"
  - "beats/<id>/metadata.json (Beat metadata)"
  - "beats/<id>/_prompts.json (prompts used, for regeneration)"
  - "beats/_catalog/beats.json (published catalog)"
  - "beats/beatgen.db (generation history, SQLite)"

config:
  - "beatgen.yaml next to the binary, all fields optional"
  - "outputDir, catalogBaseUrl, author, model, maxTokens, templatesDir"
`
