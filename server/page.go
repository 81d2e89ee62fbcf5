package server

const indexPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>Taxi-v3 Agent</title>
<style>
body { font-family: sans-serif; margin: 2em auto; max-width: 52em; }
pre { font-size: 1.3em; line-height: 1.2; background: #f4f4f4; padding: 1em; display: inline-block; }
button { font-size: 1em; padding: 0.5em 1.2em; margin-right: 0.5em; }
.stats span { display: inline-block; margin-right: 2em; }
.message { color: #b05000; min-height: 1.4em; }
</style>
</head>
<body>
<h1>&#128661; Interactive Taxi-v3 Agent</h1>
<p>A pre-trained policy picks the greedy action for every state of the
Taxi-v3 gridworld. Step through the episode manually or run it to
completion.</p>
<div>
<button onclick="post('/run')">Run Full Simulation</button>
<button onclick="post('/step')">Step Manually</button>
<button onclick="post('/reset')">Reset Environment</button>
<button onclick="post('/stop')">Stop</button>
</div>
<p class="stats">
<span>Step: <b id="steps">0</b></span>
<span>Last action: <b id="action">None</b></span>
<span>Last reward: <b id="last_reward">0</b></span>
<span>Total reward: <b id="total_reward">0</b></span>
</p>
<p class="message" id="message"></p>
<pre id="frame"></pre>
<script>
const actions = ["South", "North", "East", "West", "Pickup", "Dropoff"];
function show(s) {
  document.getElementById("steps").textContent = s.steps;
  document.getElementById("action").textContent = s.last_action < 0 ? "None" : actions[s.last_action];
  document.getElementById("last_reward").textContent = s.last_reward.toFixed(1);
  document.getElementById("total_reward").textContent = s.total_reward.toFixed(1);
  document.getElementById("frame").textContent = s.frame;
  let msg = s.message || "";
  if (s.terminated) { msg = "Episode finished successfully in " + s.steps + " steps!"; }
  else if (s.truncated) { msg = "Episode truncated after " + s.steps + " steps."; }
  document.getElementById("message").textContent = msg;
}
function post(path) {
  fetch(path, {method: "POST"}).then(r => r.json()).then(s => { if (s.frame) show(s); });
}
function poll() {
  fetch("/state").then(r => r.json()).then(show).catch(() => {});
}
poll();
setInterval(poll, 150);
</script>
</body>
</html>
`
