// Package web holds the calculator form served at the root path. The
// page is self-contained: plain HTML plus a small fetch() script that
// talks to the JSON API.
package web

var FormPage = `
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Risk-Reward Analysis Tool</title>
    <style>
        body { font-family: sans-serif; max-width: 900px; margin: 20px auto; padding: 0 10px; }
        fieldset { border: 1px solid #ccc; margin-bottom: 12px; }
        label { display: inline-block; width: 220px; }
        input { width: 140px; margin: 3px 0; }
        table { border-collapse: collapse; margin-top: 10px; }
        th, td { border: 1px solid #aaa; padding: 5px; text-align: center; }
        .metric { display: inline-block; border: 1px solid #ccc; padding: 10px 20px; margin-right: 10px; }
        .metric .value { font-size: 1.4em; }
        #error { color: #b00; }
        #warning { color: #a60; }
        #message { margin-top: 8px; }
    </style>
</head>
<body>
    <h2>Risk-Reward Analysis Tool</h2>

    <fieldset>
        <legend>Price Parameters</legend>
        <div><label>Average Price ($)</label><input id="avg_price" title="The average entry price of your position (e.g., 0.008, 150.25, 0.00001234)"></div>
        <div><label>Max Against Price - Stop Loss ($)</label><input id="max_against_price" title="Maximum price movement against your position (e.g., 0.006, 148.50)"></div>
        <div><label>Target Price ($)</label><input id="target_price" title="Your profit target price (e.g., 0.012, 155.75)"></div>
        <div><label>Tick Size ($)</label><input id="tick_size" title="Minimum price movement unit (e.g., 0.001, 0.01, 0.00001)"></div>
    </fieldset>

    <fieldset>
        <legend>Position Parameters</legend>
        <div><label>Number of Lots</label><input id="num_lots" title="Total number of lots in your position (e.g., 1, 10, 0.5)"></div>
        <div><label>Tick Value ($)</label><input id="tick_value" title="Monetary value of one tick movement in dollars (e.g., 1, 25, 0.01)"></div>
        <div><label>Total Lots for Entry/Exit</label><input id="total_lots_entry_exit" title="Number of lots used for entry and exit calculations"></div>
    </fieldset>

    <fieldset>
        <legend>Cost Parameters (optional)</legend>
        <div><label>Transaction Cost per Lot ($)</label><input id="cost_per_lot" value="0" title="Transaction cost charged per lot in dollars (optional - defaults to 0)"></div>
        <div><label>Rebate per Lot ($)</label><input id="rebate_per_lot" value="0" title="Rebate received per lot in dollars (optional - defaults to 0)"></div>
    </fieldset>

    <div>
        Preset: <select id="preset"><option value="">(none)</option></select>
        <button onclick="applyPreset()">Apply</button>
        <button onclick="calculate()">Calculate Risk-Reward</button>
    </div>

    <p id="error"></p>
    <p id="warning"></p>

    <div id="results" style="display:none">
        <h3>Results</h3>
        <div class="metric"><div>Total Risk</div><div class="value" id="total_risk"></div></div>
        <div class="metric"><div>Total Reward</div><div class="value" id="total_reward"></div></div>
        <div class="metric"><div>Risk:Reward Ratio</div><div class="value" id="ratio"></div><div id="delta"></div></div>
        <p id="message"></p>
        <h3>Detailed Breakdown</h3>
        <table id="breakdown">
            <thead><tr><th>Component</th><th>Risk Calculation</th><th>Reward Calculation</th></tr></thead>
            <tbody></tbody>
        </table>
        <h3>Financial Summary</h3>
        <ul>
            <li>Maximum Loss: <span id="max_loss"></span></li>
            <li>Potential Profit: <span id="potential_profit"></span></li>
            <li id="profit_percent_row" style="display:none">Profit Potential: <span id="profit_percent"></span>% of risk</li>
            <li id="risk_percent_row" style="display:none">Risk as % of Position: <span id="risk_percent"></span>%</li>
        </ul>
    </div>

<script>
const fields = ["avg_price", "max_against_price", "target_price", "tick_size",
    "num_lots", "tick_value", "total_lots_entry_exit", "cost_per_lot", "rebate_per_lot"];

let presets = [];

async function loadPresets() {
    try {
        const resp = await fetch("/api/v1/presets");
        const data = await resp.json();
        presets = data.presets || [];
        const sel = document.getElementById("preset");
        presets.forEach((p, i) => {
            const opt = document.createElement("option");
            opt.value = i;
            opt.textContent = p.description ? p.name + " - " + p.description : p.name;
            sel.appendChild(opt);
        });
    } catch (e) {
        // presets are optional; the form works without them
    }
}

function applyPreset() {
    const sel = document.getElementById("preset");
    if (sel.value === "") return;
    const inputs = presets[parseInt(sel.value)].inputs;
    fields.forEach(f => {
        if (inputs[f] !== undefined) {
            document.getElementById(f).value = inputs[f];
        }
    });
}

async function calculate() {
    document.getElementById("error").textContent = "";
    document.getElementById("warning").textContent = "";

    const inputs = {};
    fields.forEach(f => { inputs[f] = document.getElementById(f).value; });

    const resp = await fetch("/api/v1/calculate", {
        method: "POST",
        headers: { "Content-Type": "application/json" },
        body: JSON.stringify({ inputs: inputs, options: { include_breakdown: true } })
    });
    const data = await resp.json();

    if (!resp.ok) {
        document.getElementById("results").style.display = "none";
        document.getElementById("error").textContent = data.error ? data.error.message : "request failed";
        return;
    }

    const s = data.summary;
    document.getElementById("results").style.display = "block";
    document.getElementById("total_risk").textContent = s.total_risk_display;
    document.getElementById("total_reward").textContent = s.total_reward_display;
    document.getElementById("ratio").textContent = s.ratio;
    document.getElementById("delta").textContent = s.delta;
    document.getElementById("message").textContent = s.message;
    document.getElementById("warning").textContent = s.warning || "";

    const tbody = document.querySelector("#breakdown tbody");
    tbody.innerHTML = "";
    (data.breakdown || []).forEach(row => {
        const tr = document.createElement("tr");
        [row.component, row.risk, row.reward].forEach(v => {
            const td = document.createElement("td");
            td.textContent = v;
            tr.appendChild(td);
        });
        tbody.appendChild(tr);
    });

    document.getElementById("max_loss").textContent = s.total_risk_display;
    document.getElementById("potential_profit").textContent = s.total_reward_display;

    const pp = document.getElementById("profit_percent_row");
    if (s.profit_percent !== undefined) {
        pp.style.display = "list-item";
        document.getElementById("profit_percent").textContent = s.profit_percent.toFixed(1);
    } else {
        pp.style.display = "none";
    }
    const rp = document.getElementById("risk_percent_row");
    if (s.risk_percent_of_position !== undefined) {
        rp.style.display = "list-item";
        document.getElementById("risk_percent").textContent = s.risk_percent_of_position.toFixed(2);
    } else {
        rp.style.display = "none";
    }
}

loadPresets();
</script>
</body>
</html>
`
