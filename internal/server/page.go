package server

// indexPage is the single-page UI: one prompt input, two output panels with
// copy buttons. The submit button is disabled while the prompt is empty so
// the pipeline is never invoked without input.
const indexPage = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Prompt Engineering</title>
<style>
  body {
    color: #fff;
    background-color: #1e1e1e;
    font-family: sans-serif;
    max-width: 720px;
    margin: 2rem auto;
    padding: 0 1rem;
  }
  h1 { font-size: 1.6rem; }
  h2 { font-size: 1.1rem; margin-bottom: 0.3rem; }
  textarea, input[type=text] {
    width: 100%;
    box-sizing: border-box;
    color: #fff;
    background-color: #2a2a2a;
    border: 1px solid #444;
    border-radius: 4px;
    padding: 0.5rem;
  }
  textarea { height: 120px; resize: vertical; }
  button {
    color: #fff;
    background-color: #333;
    border: 1px solid #444;
    border-radius: 4px;
    padding: 0.4rem 1rem;
    margin: 0.5rem 0;
    cursor: pointer;
  }
  button:disabled { opacity: 0.5; cursor: default; }
  .error { color: #f66; }
</style>
</head>
<body>
<h1>Prompt Engineering</h1>

<input type="text" id="prompt" placeholder="Enter your prompt:">
<button id="refine" disabled>Refine</button>
<p id="status"></p>

<h2>Refined prompt 1 (manual):</h2>
<textarea id="manual" readonly></textarea>
<button data-copy="manual">Copy Refined Prompt 1</button>

<h2>Refined prompt 2 (Gemini):</h2>
<textarea id="external" readonly></textarea>
<button data-copy="external">Copy Refined Prompt 2</button>

<script>
const promptInput = document.getElementById("prompt");
const refineButton = document.getElementById("refine");
const status = document.getElementById("status");

promptInput.addEventListener("input", () => {
  refineButton.disabled = promptInput.value.trim() === "";
});

refineButton.addEventListener("click", async () => {
  refineButton.disabled = true;
  status.textContent = "Refining...";
  status.className = "";
  try {
    const resp = await fetch("/api/v1/refine", {
      method: "POST",
      headers: {"Content-Type": "application/json"},
      body: JSON.stringify({prompt: promptInput.value}),
    });
    const data = await resp.json();
    if (!resp.ok) {
      throw new Error(data.error || "request failed");
    }
    document.getElementById("manual").value = data.manual;
    document.getElementById("external").value = data.external;
    status.textContent = "";
  } catch (err) {
    status.textContent = err.message;
    status.className = "error";
  } finally {
    refineButton.disabled = promptInput.value.trim() === "";
  }
});

for (const button of document.querySelectorAll("[data-copy]")) {
  button.addEventListener("click", () => {
    const text = document.getElementById(button.dataset.copy).value;
    navigator.clipboard.writeText(text);
  });
}
</script>
</body>
</html>
`
